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

// MarkDecorators marks every identifier reachable from a decorator list.
// Four encodings occur in the wild: a name directly on the decorator, a
// wrapped plain reference, a factory call, and a wrapped factory call.
// The checks are not mutually exclusive; a decorator filling several
// fields marks all of them. Decorators without a resolvable name in any
// shape are skipped.
func MarkDecorators(decs []*ast.Decorator, sc *scope.Scope) {
	for _, d := range decs {
		if d == nil {
			continue
		}

		if d.Name != "" {
			MarkUsed(sc, d.Name)
		}

		if id, ok := d.Expression.(*ast.Identifier); ok {
			MarkUsed(sc, id.Name)
		}

		if id, ok := d.Callee.(*ast.Identifier); ok {
			MarkUsed(sc, id.Name)
		}

		if call, ok := d.Expression.(*ast.CallExpression); ok {
			if id, ok := call.Callee.(*ast.Identifier); ok {
				MarkUsed(sc, id.Name)
			}
		}
	}
}

// MarkMethodDecorators marks the decorators of a class method and of each
// of its parameters. Methods whose structural parent is not a class body
// are skipped entirely: loosely validated trees can attach decorator
// syntax to non-member declarations, and those must not be processed.
func MarkMethodDecorators(m *ast.MethodDefinition, parent ast.Node, sc *scope.Scope) {
	if parent == nil || parent.Kind() != ast.KindClassBody {
		return
	}

	MarkDecorators(m.Decorators, sc)

	if m.Value == nil {
		return
	}
	for _, p := range m.Value.Params {
		if p != nil {
			MarkDecorators(p.Decorators, sc)
		}
	}
}
