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

// ResolveTypeReferences recursively decomposes type-position syntax into
// identifier names and marks each via [MarkUsed]. Node kinds that name
// nothing, such as keyword, literal and tuple types, terminate the
// recursion silently.
func ResolveTypeReferences(n ast.Node, sc *scope.Scope) {
	switch n := n.(type) {
	case *ast.TypeAnnotation:
		ResolveTypeReferences(n.Type, sc)

	case *ast.TypeReference:
		if arr, ok := n.Name.(*ast.ArrayType); ok {
			// The front end encodes Foo[] by nesting the element type
			// under the name field rather than emitting a sibling array
			// node. Mark the element, never the wrapper.
			ResolveTypeReferences(arr.Element, sc)

			return
		}

		if id, ok := n.Name.(*ast.Identifier); ok {
			MarkUsed(sc, id.Name)
		}

		for _, arg := range n.TypeArguments {
			ResolveTypeReferences(arg, sc)
		}

	case *ast.UnionType:
		for _, t := range n.Types {
			ResolveTypeReferences(t, sc)
		}

	case *ast.IntersectionType:
		for _, t := range n.Types {
			ResolveTypeReferences(t, sc)
		}
	}
}
