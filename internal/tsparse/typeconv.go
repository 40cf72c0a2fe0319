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

package tsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/annomark/internal/ast"
)

func (c *converter) typeAnnotation(n *sitter.Node) *ast.TypeAnnotation {
	t := &ast.TypeAnnotation{Loc: c.loc(n)}
	if inner := n.NamedChild(0); inner != nil {
		t.Type = c.typeNode(inner)
	}

	return t
}

// typeNode converts a type expression. Array types use a nested encoding:
// "Foo[]" becomes a type reference whose name field holds the array node
// wrapping the element type, not a sibling array node. Consumers that walk
// type references look through that wrapper.
func (c *converter) typeNode(n *sitter.Node) ast.Node {
	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case "array_type":
		arr := &ast.ArrayType{Loc: c.loc(n)}
		if elem := n.NamedChild(0); elem != nil {
			arr.Element = c.typeNode(elem)
		}

		return &ast.TypeReference{Loc: c.loc(n), Name: arr}

	case "generic_type":
		ref := &ast.TypeReference{Loc: c.loc(n)}
		if name := genericTypeName(n); name != nil {
			ref.Name = c.identifier(name)
		}
		if args := n.ChildByFieldName("type_arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				if arg := c.typeNode(args.NamedChild(i)); arg != nil {
					ref.TypeArguments = append(ref.TypeArguments, arg)
				}
			}
		}

		return ref

	case "intersection_type":
		t := &ast.IntersectionType{Loc: c.loc(n)}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if member := c.typeNode(n.NamedChild(i)); member != nil {
				t.Types = append(t.Types, member)
			}
		}

		return t

	case "literal_type":
		t := &ast.LiteralType{Loc: c.loc(n)}
		if inner := n.NamedChild(0); inner != nil {
			t.Literal = &ast.Literal{Loc: c.loc(inner), Raw: c.text(inner)}
		}

		return t

	case "parenthesized_type":
		if inner := n.NamedChild(0); inner != nil {
			return c.typeNode(inner)
		}

		return nil

	case "predefined_type":
		return &ast.KeywordType{Loc: c.loc(n), Name: c.text(n)}

	case "tuple_type":
		t := &ast.TupleType{Loc: c.loc(n)}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if elem := c.typeNode(n.NamedChild(i)); elem != nil {
				t.Elements = append(t.Elements, elem)
			}
		}

		return t

	case "type_identifier", "identifier":
		return &ast.TypeReference{Loc: c.loc(n), Name: c.identifier(n)}

	case "union_type":
		t := &ast.UnionType{Loc: c.loc(n)}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if member := c.typeNode(n.NamedChild(i)); member != nil {
				t.Types = append(t.Types, member)
			}
		}

		return t
		// keep-sorted end

	default:
		// Mapped, conditional, function and other exotic type forms name
		// nothing the mark pass handles; they convert to nothing.
		return nil
	}
}

// genericTypeName returns the name node of a generic type. The grammar
// attaches no field to it, so it is the first named child that is not the
// type argument list.
func genericTypeName(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		switch child := n.NamedChild(i); child.Type() {
		case "type_identifier", "identifier":
			return child
		}
	}

	return nil
}
