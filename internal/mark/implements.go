// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mark

import (
	"fillmore-labs.com/annomark/internal/ast"
	"fillmore-labs.com/annomark/internal/scope"
)

// MarkImplements marks the interface references of a class implements
// list. Entries that do not expose a plain identifier are skipped.
func MarkImplements(c *ast.ClassDeclaration, sc *scope.Scope) {
	for _, entry := range c.Implements {
		if entry == nil {
			continue
		}

		if id, ok := entry.Expression.(*ast.Identifier); ok {
			MarkUsed(sc, id.Name)
		}
	}
}
