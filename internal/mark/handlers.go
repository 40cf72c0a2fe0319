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

// Context carries the traversal state a [Handler] needs: the node's
// structural parent and the lexical scope active at the node.
type Context struct {
	Parent ast.Node
	Scope  *scope.Scope
}

// Handler processes one node during the host traversal.
type Handler func(n ast.Node, ctx Context)

// Handlers returns the visitor table of the mark pass, keyed by node kind.
// The host traversal invokes the matching handler once per node it enters,
// in its own pre-order; the table itself holds no state.
func Handlers() map[ast.Kind]Handler {
	return map[ast.Kind]Handler{
		// keep-sorted start newline_separated=yes
		ast.KindArrowFunction: func(n ast.Node, ctx Context) {
			returnType(n.(*ast.ArrowFunction).ReturnType, ctx)
		},

		ast.KindClassDeclaration: func(n ast.Node, ctx Context) {
			c := n.(*ast.ClassDeclaration)
			MarkDecorators(c.Decorators, ctx.Scope)
			MarkImplements(c, ctx.Scope)
		},

		ast.KindFunctionDeclaration: func(n ast.Node, ctx Context) {
			returnType(n.(*ast.FunctionDeclaration).ReturnType, ctx)
		},

		ast.KindFunctionExpression: func(n ast.Node, ctx Context) {
			returnType(n.(*ast.FunctionExpression).ReturnType, ctx)
		},

		ast.KindIdentifier: func(n ast.Node, ctx Context) {
			if t := n.(*ast.Identifier).TypeAnnotation; t != nil {
				ResolveTypeReferences(t, ctx.Scope)
			}
		},

		ast.KindMethodDefinition: func(n ast.Node, ctx Context) {
			MarkMethodDecorators(n.(*ast.MethodDefinition), ctx.Parent, ctx.Scope)
		},

		ast.KindPropertyDefinition: func(n ast.Node, ctx Context) {
			MarkDecorators(n.(*ast.PropertyDefinition).Decorators, ctx.Scope)
		},

		ast.KindTypeAnnotation: func(n ast.Node, ctx Context) {
			ResolveTypeReferences(n, ctx.Scope)
		},
		// keep-sorted end
	}
}

func returnType(t *ast.TypeAnnotation, ctx Context) {
	if t != nil {
		ResolveTypeReferences(t, ctx.Scope)
	}
}
