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

package ast

// Visitor is the traversal-plugin contract of [Walk]. Enter is invoked in
// pre-order with the node and its structural parent; returning false skips
// the node's subtree, in which case Leave is not called for it.
type Visitor interface {
	Enter(n, parent Node) bool
	Leave(n Node)
}

// Walk traverses the tree rooted at n in depth-first pre-order.
func Walk(n Node, v Visitor) {
	walk(n, nil, v)
}

// Inspect traverses the tree rooted at n, calling f for every node in
// pre-order. If f returns false, the node's children are skipped.
func Inspect(n Node, f func(n, parent Node) bool) {
	Walk(n, inspector(f))
}

type inspector func(n, parent Node) bool

func (f inspector) Enter(n, parent Node) bool { return f(n, parent) }
func (inspector) Leave(Node)                  {}

func walk(n, parent Node, v Visitor) {
	if n == nil {
		return
	}

	if !v.Enter(n, parent) {
		return
	}

	switch n := n.(type) {
	// keep-sorted start newline_separated=yes
	case *ArrayType:
		walk(n.Element, n, v)

	case *ArrowFunction:
		walkParams(n.Params, n, v)
		walkAnnotation(n.ReturnType, n, v)
		walk(n.Body, n, v)

	case *AssignmentExpression:
		walk(n.Left, n, v)
		walk(n.Right, n, v)

	case *BlockStatement:
		walkList(n.Body, n, v)

	case *CallExpression:
		walk(n.Callee, n, v)
		walkList(n.Arguments, n, v)

	case *ClassBody:
		walkList(n.Body, n, v)

	case *ClassDeclaration:
		walkDecorators(n.Decorators, n, v)
		walkIdent(n.ID, n, v)
		walk(n.SuperClass, n, v)
		for _, impl := range n.Implements {
			if impl != nil {
				walk(impl, n, v)
			}
		}
		if n.Body != nil {
			walk(n.Body, n, v)
		}

	case *ClassImplements:
		walk(n.Expression, n, v)

	case *Decorator:
		walk(n.Expression, n, v)
		walk(n.Callee, n, v)

	case *ExpressionStatement:
		walk(n.Expression, n, v)

	case *FunctionDeclaration:
		walkIdent(n.ID, n, v)
		walkParams(n.Params, n, v)
		walkAnnotation(n.ReturnType, n, v)
		if n.Body != nil {
			walk(n.Body, n, v)
		}

	case *FunctionExpression:
		walkIdent(n.ID, n, v)
		walkParams(n.Params, n, v)
		walkAnnotation(n.ReturnType, n, v)
		if n.Body != nil {
			walk(n.Body, n, v)
		}

	case *Identifier:
		walkAnnotation(n.TypeAnnotation, n, v)

	case *ImportDeclaration:
		for _, spec := range n.Specifiers {
			if spec != nil {
				walk(spec, n, v)
			}
		}

	case *ImportSpecifier:
		walkIdent(n.Local, n, v)

	case *IntersectionType:
		walkList(n.Types, n, v)

	case *KeywordType, *Literal: // leaves

	case *LiteralType:
		if n.Literal != nil {
			walk(n.Literal, n, v)
		}

	case *MemberExpression:
		walk(n.Object, n, v)
		walk(n.Property, n, v)

	case *MethodDefinition:
		walkDecorators(n.Decorators, n, v)
		walk(n.Key, n, v)
		if n.Value != nil {
			walk(n.Value, n, v)
		}

	case *NewExpression:
		walk(n.Callee, n, v)
		walkList(n.Arguments, n, v)

	case *Parameter:
		walkDecorators(n.Decorators, n, v)
		walkIdent(n.Name, n, v)
		walk(n.Default, n, v)

	case *Program:
		walkList(n.Body, n, v)

	case *PropertyDefinition:
		walkDecorators(n.Decorators, n, v)
		walk(n.Key, n, v)
		walkAnnotation(n.TypeAnnotation, n, v)
		walk(n.Value, n, v)

	case *ReturnStatement:
		walk(n.Argument, n, v)

	case *TupleType:
		walkList(n.Elements, n, v)

	case *TypeAnnotation:
		walk(n.Type, n, v)

	case *TypeReference:
		walk(n.Name, n, v)
		walkList(n.TypeArguments, n, v)

	case *UnionType:
		walkList(n.Types, n, v)

	case *VariableDeclaration:
		for _, decl := range n.Declarations {
			if decl != nil {
				walk(decl, n, v)
			}
		}

	case *VariableDeclarator:
		walkIdent(n.ID, n, v)
		walk(n.Init, n, v)
		// keep-sorted end
	}

	v.Leave(n)
}

func walkList(list []Node, parent Node, v Visitor) {
	for _, n := range list {
		walk(n, parent, v)
	}
}

func walkIdent(id *Identifier, parent Node, v Visitor) {
	if id != nil {
		walk(id, parent, v)
	}
}

func walkAnnotation(t *TypeAnnotation, parent Node, v Visitor) {
	if t != nil {
		walk(t, parent, v)
	}
}

func walkParams(params []*Parameter, parent Node, v Visitor) {
	for _, p := range params {
		if p != nil {
			walk(p, parent, v)
		}
	}
}

func walkDecorators(decs []*Decorator, parent Node, v Visitor) {
	for _, d := range decs {
		if d != nil {
			walk(d, parent, v)
		}
	}
}
