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

package scope

import "fillmore-labs.com/annomark/internal/ast"

// Info is the scope structure built for one program: the synthetic root,
// the module scope below it and an index from scope-owning syntax nodes to
// their scopes. The tree is read-only after Build except for the usage
// flags on its variables.
type Info struct {
	Root   *Scope
	Module *Scope
	ByNode map[ast.Node]*Scope
}

// ScopeOf returns the scope owned by n, or nil when n opens no scope.
func (i *Info) ScopeOf(n ast.Node) *Scope {
	return i.ByNode[n]
}

// Build constructs the scope tree for a program, declaring every binding
// and recording value-level references by flipping the usage flag of the
// nearest declaration. References hidden in type-only or decorator-only
// syntax are not visited here; the mark pass resolves those afterwards.
//
// The returned root is a synthetic wrapper above the module scope,
// mirroring the host scope model upward searches have to account for.
func Build(program *ast.Program) *Info {
	root := NewScope(Global, nil, nil)
	module := NewScope(Module, program, root)

	b := &builder{info: &Info{
		Root:   root,
		Module: module,
		ByNode: map[ast.Node]*Scope{program: module},
	}}
	b.stmts(program.Body, module)

	return b.info
}

type builder struct {
	info *Info
}

func (b *builder) open(kind Kind, node ast.Node, parent *Scope) *Scope {
	s := NewScope(kind, node, parent)
	b.info.ByNode[node] = s

	return s
}

func (b *builder) stmts(list []ast.Node, sc *Scope) {
	for _, n := range list {
		b.stmt(n, sc)
	}
}

func (b *builder) stmt(n ast.Node, sc *Scope) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.BlockStatement:
		b.stmts(n.Body, b.open(Block, n, sc))

	case *ast.ClassDeclaration:
		b.class(n, sc)

	case *ast.ExpressionStatement:
		b.expr(n.Expression, sc)

	case *ast.FunctionDeclaration:
		if n.ID != nil {
			v := sc.Declare(n.ID.Name, RoleFunction, n.ID)
			if n.Exported {
				v.MarkUsed()
			}
		}
		b.function(n, n.Params, n.Body, sc)

	case *ast.ImportDeclaration:
		for _, spec := range n.Specifiers {
			if spec != nil && spec.Local != nil {
				sc.Declare(spec.Local.Name, RoleImport, spec.Local)
			}
		}

	case *ast.ReturnStatement:
		b.expr(n.Argument, sc)

	case *ast.VariableDeclaration:
		for _, decl := range n.Declarations {
			if decl == nil {
				continue
			}
			if decl.ID != nil {
				v := sc.Declare(decl.ID.Name, RoleVariable, decl.ID)
				if n.Exported {
					v.MarkUsed()
				}
			}
			b.expr(decl.Init, sc)
		}
		// keep-sorted end

	default:
		b.expr(n, sc)
	}
}

// function opens the scope for any function-like node, declaring its
// parameters there. The body block shares the function scope.
func (b *builder) function(n ast.Node, params []*ast.Parameter, body ast.Node, sc *Scope) {
	fn := b.open(Function, n, sc)

	for _, p := range params {
		if p == nil {
			continue
		}
		if p.Name != nil {
			fn.Declare(p.Name.Name, RoleParameter, p.Name)
		}
		b.expr(p.Default, fn)
	}

	switch body := body.(type) {
	case *ast.BlockStatement:
		b.stmts(body.Body, fn)
	case nil:
	default: // expression-bodied arrow
		b.expr(body, fn)
	}
}

func (b *builder) class(n *ast.ClassDeclaration, sc *Scope) {
	if n.ID != nil {
		v := sc.Declare(n.ID.Name, RoleClass, n.ID)
		if n.Exported {
			v.MarkUsed()
		}
	}

	// Decorator and implements identifiers are deliberately not recorded
	// as references; the mark pass owns those positions.
	b.expr(n.SuperClass, sc)

	if n.Body == nil {
		return
	}
	body := b.open(Class, n.Body, sc)

	for _, member := range n.Body.Body {
		switch member := member.(type) {
		case *ast.MethodDefinition:
			if member.Value != nil {
				b.function(member.Value, member.Value.Params, member.Value.Body, body)
			}

		case *ast.PropertyDefinition:
			b.expr(member.Value, body)
		}
	}
}

// expr records value-level identifier references. Reads resolve to the
// nearest declaration and mark it used; type annotations are skipped.
func (b *builder) expr(n ast.Node, sc *Scope) {
	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.ArrowFunction:
		b.function(n, n.Params, n.Body, sc)

	case *ast.AssignmentExpression:
		// A bare write is not a use; only reads count.
		if obj, ok := n.Left.(*ast.MemberExpression); ok {
			b.expr(obj, sc)
		}
		b.expr(n.Right, sc)

	case *ast.CallExpression:
		b.expr(n.Callee, sc)
		for _, arg := range n.Arguments {
			b.expr(arg, sc)
		}

	case *ast.FunctionExpression:
		b.function(n, n.Params, n.Body, sc)

	case *ast.Identifier:
		if v := sc.Resolve(n.Name); v != nil {
			v.MarkUsed()
		}

	case *ast.MemberExpression:
		b.expr(n.Object, sc)
		if n.Computed {
			b.expr(n.Property, sc)
		}

	case *ast.NewExpression:
		b.expr(n.Callee, sc)
		for _, arg := range n.Arguments {
			b.expr(arg, sc)
		}
		// keep-sorted end
	}
}
