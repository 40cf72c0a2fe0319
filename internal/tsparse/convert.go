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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/annomark/internal/ast"
)

// converter translates tree-sitter concrete nodes into ast values.
type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) loc(n *sitter.Node) ast.Loc {
	start, end := n.StartPoint(), n.EndPoint()

	return ast.Loc{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

func (c *converter) program(root *sitter.Node) *ast.Program {
	p := &ast.Program{Loc: c.loc(root)}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if stmt := c.statement(root.NamedChild(i)); stmt != nil {
			p.Body = append(p.Body, stmt)
		}
	}

	return p
}

func (c *converter) statement(n *sitter.Node) ast.Node {
	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case "class_declaration", "abstract_class_declaration":
		return c.class(n, nil)

	case "export_statement":
		return c.export(n)

	case "expression_statement":
		if inner := n.NamedChild(0); inner != nil {
			if expr := c.expression(inner); expr != nil {
				return &ast.ExpressionStatement{Loc: c.loc(n), Expression: expr}
			}
		}

		return nil

	case "function_declaration":
		return c.functionDeclaration(n)

	case "import_statement":
		return c.importStatement(n)

	case "lexical_declaration", "variable_declaration":
		return c.variableDeclaration(n)

	case "return_statement":
		ret := &ast.ReturnStatement{Loc: c.loc(n)}
		if arg := n.NamedChild(0); arg != nil {
			ret.Argument = c.expression(arg)
		}

		return ret

	case "statement_block":
		return c.block(n)
		// keep-sorted end

	default:
		return c.expression(n)
	}
}

func (c *converter) block(n *sitter.Node) *ast.BlockStatement {
	b := &ast.BlockStatement{Loc: c.loc(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if stmt := c.statement(n.NamedChild(i)); stmt != nil {
			b.Body = append(b.Body, stmt)
		}
	}

	return b
}

// export unwraps an export statement. Decorators on an exported class are
// attached to the export node by the grammar, so they are collected here
// and handed down.
func (c *converter) export(n *sitter.Node) ast.Node {
	var decorators []*ast.Decorator
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.Type() == "decorator" {
			if d := c.decorator(child); d != nil {
				decorators = append(decorators, d)
			}
		}
	}

	decl := n.ChildByFieldName("declaration")
	if decl == nil {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			switch child := n.NamedChild(i); child.Type() {
			case "decorator", "comment":
			default:
				decl = child
			}
		}
	}
	if decl == nil {
		return nil
	}

	var converted ast.Node
	switch decl.Type() {
	case "class_declaration", "abstract_class_declaration":
		converted = c.class(decl, decorators)
	default:
		converted = c.statement(decl)
	}

	// An exported binding is reachable from other modules and never
	// reported unused.
	switch converted := converted.(type) {
	case *ast.ClassDeclaration:
		converted.Exported = true
	case *ast.FunctionDeclaration:
		converted.Exported = true
	case *ast.VariableDeclaration:
		converted.Exported = true
	}

	return converted
}

func (c *converter) importStatement(n *sitter.Node) ast.Node {
	imp := &ast.ImportDeclaration{Loc: c.loc(n)}

	if source := n.ChildByFieldName("source"); source != nil {
		imp.Source = strings.Trim(c.text(source), "\"'`")
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "import_clause" {
			continue
		}

		for j := 0; j < int(child.NamedChildCount()); j++ {
			switch clause := child.NamedChild(j); clause.Type() {
			case "identifier": // default import
				imp.Specifiers = append(imp.Specifiers, &ast.ImportSpecifier{
					Loc:      c.loc(clause),
					Local:    c.identifier(clause),
					Imported: "default",
					Default:  true,
				})

			case "namespace_import":
				if id := lastNamedOfType(clause, "identifier"); id != nil {
					imp.Specifiers = append(imp.Specifiers, &ast.ImportSpecifier{
						Loc:       c.loc(clause),
						Local:     c.identifier(id),
						Namespace: true,
					})
				}

			case "named_imports":
				for k := 0; k < int(clause.NamedChildCount()); k++ {
					spec := clause.NamedChild(k)
					if spec.Type() != "import_specifier" {
						continue
					}
					name := spec.ChildByFieldName("name")
					if name == nil {
						continue
					}
					local := name
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = alias
					}
					imp.Specifiers = append(imp.Specifiers, &ast.ImportSpecifier{
						Loc:      c.loc(spec),
						Local:    c.identifier(local),
						Imported: c.text(name),
					})
				}
			}
		}
	}

	return imp
}

func (c *converter) variableDeclaration(n *sitter.Node) ast.Node {
	decl := &ast.VariableDeclaration{Loc: c.loc(n)}
	if kw := n.Child(0); kw != nil {
		decl.Keyword = c.text(kw)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}

		d := &ast.VariableDeclarator{Loc: c.loc(child)}
		if name := child.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			d.ID = c.identifier(name)
			if t := child.ChildByFieldName("type"); t != nil {
				d.ID.TypeAnnotation = c.typeAnnotation(t)
			}
		}
		if value := child.ChildByFieldName("value"); value != nil {
			d.Init = c.expression(value)
		}
		decl.Declarations = append(decl.Declarations, d)
	}

	return decl
}

func (c *converter) functionDeclaration(n *sitter.Node) ast.Node {
	fn := &ast.FunctionDeclaration{Loc: c.loc(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.ID = c.identifier(name)
	}
	fn.Params = c.parameters(n.ChildByFieldName("parameters"))
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		fn.ReturnType = c.typeAnnotation(rt)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		fn.Body = c.block(body)
	}

	return fn
}

func (c *converter) class(n *sitter.Node, decorators []*ast.Decorator) ast.Node {
	cls := &ast.ClassDeclaration{Loc: c.loc(n), Decorators: decorators}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.Type() == "decorator" {
			if d := c.decorator(child); d != nil {
				cls.Decorators = append(cls.Decorators, d)
			}
		}
	}

	if name := n.ChildByFieldName("name"); name != nil {
		cls.ID = c.identifier(name)
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "class_heritage" {
			continue
		}
		c.heritage(child, cls)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		cls.Body = c.classBody(body)
	}

	return cls
}

func (c *converter) heritage(n *sitter.Node, cls *ast.ClassDeclaration) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		switch clause := n.NamedChild(i); clause.Type() {
		case "extends_clause":
			if value := clause.NamedChild(0); value != nil {
				cls.SuperClass = c.expression(value)
			}

		case "implements_clause":
			for j := 0; j < int(clause.NamedChildCount()); j++ {
				entry := clause.NamedChild(j)

				impl := &ast.ClassImplements{Loc: c.loc(entry)}
				switch entry.Type() {
				case "type_identifier", "identifier":
					impl.Expression = c.identifier(entry)
				case "generic_type":
					if name := genericTypeName(entry); name != nil {
						impl.Expression = c.identifier(name)
					}
				}
				cls.Implements = append(cls.Implements, impl)
			}
		}
	}
}

func (c *converter) classBody(n *sitter.Node) *ast.ClassBody {
	body := &ast.ClassBody{Loc: c.loc(n)}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		switch member := n.NamedChild(i); member.Type() {
		case "method_definition":
			body.Body = append(body.Body, c.method(member))

		case "public_field_definition":
			body.Body = append(body.Body, c.field(member))
		}
	}

	return body
}

func (c *converter) method(n *sitter.Node) *ast.MethodDefinition {
	m := &ast.MethodDefinition{Loc: c.loc(n), Decorators: c.memberDecorators(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		m.Key = &ast.Identifier{Loc: c.loc(name), Name: c.text(name)}
	}

	value := &ast.FunctionExpression{Loc: c.loc(n)}
	value.Params = c.parameters(n.ChildByFieldName("parameters"))
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		value.ReturnType = c.typeAnnotation(rt)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		value.Body = c.block(body)
	}
	m.Value = value

	return m
}

func (c *converter) field(n *sitter.Node) *ast.PropertyDefinition {
	f := &ast.PropertyDefinition{Loc: c.loc(n), Decorators: c.memberDecorators(n)}

	if name := n.ChildByFieldName("name"); name != nil {
		f.Key = &ast.Identifier{Loc: c.loc(name), Name: c.text(name)}
	}
	if t := n.ChildByFieldName("type"); t != nil {
		f.TypeAnnotation = c.typeAnnotation(t)
	}
	if value := n.ChildByFieldName("value"); value != nil {
		f.Value = c.expression(value)
	}

	return f
}

func (c *converter) memberDecorators(n *sitter.Node) []*ast.Decorator {
	var decorators []*ast.Decorator
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.Type() == "decorator" {
			if d := c.decorator(child); d != nil {
				decorators = append(decorators, d)
			}
		}
	}

	return decorators
}

// decorator wraps the decorated expression: a plain @Foo becomes an
// identifier under Expression, a factory @Foo() a call expression under
// Expression.
func (c *converter) decorator(n *sitter.Node) *ast.Decorator {
	inner := n.NamedChild(0)
	if inner == nil {
		return nil
	}

	d := &ast.Decorator{Loc: c.loc(n)}
	switch inner.Type() {
	case "identifier":
		d.Expression = c.identifier(inner)
	case "call_expression", "member_expression":
		d.Expression = c.expression(inner)
	default:
		return nil
	}

	return d
}

func (c *converter) parameters(n *sitter.Node) []*ast.Parameter {
	if n == nil {
		return nil
	}

	var params []*ast.Parameter
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)

		switch child.Type() {
		case "required_parameter", "optional_parameter":
			p := &ast.Parameter{Loc: c.loc(child)}
			for j := 0; j < int(child.ChildCount()); j++ {
				if dec := child.Child(j); dec != nil && dec.Type() == "decorator" {
					if d := c.decorator(dec); d != nil {
						p.Decorators = append(p.Decorators, d)
					}
				}
			}
			if pattern := child.ChildByFieldName("pattern"); pattern != nil && pattern.Type() == "identifier" {
				p.Name = c.identifier(pattern)
				if t := child.ChildByFieldName("type"); t != nil {
					p.Name.TypeAnnotation = c.typeAnnotation(t)
				}
			}
			if value := child.ChildByFieldName("value"); value != nil {
				p.Default = c.expression(value)
			}
			params = append(params, p)

		case "identifier": // bare JS-style parameter
			params = append(params, &ast.Parameter{Loc: c.loc(child), Name: c.identifier(child)})
		}
	}

	return params
}

func (c *converter) expression(n *sitter.Node) ast.Node {
	switch n.Type() {
	// keep-sorted start newline_separated=yes
	case "arrow_function":
		fn := &ast.ArrowFunction{Loc: c.loc(n)}
		if params := n.ChildByFieldName("parameters"); params != nil {
			fn.Params = c.parameters(params)
		} else if param := n.ChildByFieldName("parameter"); param != nil && param.Type() == "identifier" {
			fn.Params = []*ast.Parameter{{Loc: c.loc(param), Name: c.identifier(param)}}
		}
		if rt := n.ChildByFieldName("return_type"); rt != nil {
			fn.ReturnType = c.typeAnnotation(rt)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			if body.Type() == "statement_block" {
				fn.Body = c.block(body)
			} else if expr := c.expression(body); expr != nil {
				fn.Body = expr
			}
		}

		return fn

	case "assignment_expression":
		expr := &ast.AssignmentExpression{Loc: c.loc(n)}
		if left := n.ChildByFieldName("left"); left != nil {
			expr.Left = c.expression(left)
		}
		if right := n.ChildByFieldName("right"); right != nil {
			expr.Right = c.expression(right)
		}

		return expr

	case "call_expression":
		call := &ast.CallExpression{Loc: c.loc(n)}
		if callee := n.ChildByFieldName("function"); callee != nil {
			call.Callee = c.expression(callee)
		}
		call.Arguments = c.arguments(n.ChildByFieldName("arguments"))

		return call

	case "false", "null", "number", "string", "template_string", "true", "undefined":
		return &ast.Literal{Loc: c.loc(n), Raw: c.text(n)}

	case "function", "function_expression":
		fn := &ast.FunctionExpression{Loc: c.loc(n)}
		if name := n.ChildByFieldName("name"); name != nil {
			fn.ID = c.identifier(name)
		}
		fn.Params = c.parameters(n.ChildByFieldName("parameters"))
		if rt := n.ChildByFieldName("return_type"); rt != nil {
			fn.ReturnType = c.typeAnnotation(rt)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			fn.Body = c.block(body)
		}

		return fn

	case "identifier":
		return c.identifier(n)

	case "member_expression":
		expr := &ast.MemberExpression{Loc: c.loc(n)}
		if object := n.ChildByFieldName("object"); object != nil {
			expr.Object = c.expression(object)
		}
		if property := n.ChildByFieldName("property"); property != nil {
			expr.Property = &ast.Identifier{Loc: c.loc(property), Name: c.text(property)}
		}

		return expr

	case "new_expression":
		expr := &ast.NewExpression{Loc: c.loc(n)}
		if callee := n.ChildByFieldName("constructor"); callee != nil {
			expr.Callee = c.expression(callee)
		}
		expr.Arguments = c.arguments(n.ChildByFieldName("arguments"))

		return expr

	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return c.expression(inner)
		}

		return nil

	case "subscript_expression":
		expr := &ast.MemberExpression{Loc: c.loc(n), Computed: true}
		if object := n.ChildByFieldName("object"); object != nil {
			expr.Object = c.expression(object)
		}
		if index := n.ChildByFieldName("index"); index != nil {
			expr.Property = c.expression(index)
		}

		return expr
		// keep-sorted end

	default:
		return nil
	}
}

func (c *converter) arguments(n *sitter.Node) []ast.Node {
	if n == nil {
		return nil
	}

	var args []ast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if arg := c.expression(n.NamedChild(i)); arg != nil {
			args = append(args, arg)
		}
	}

	return args
}

func (c *converter) identifier(n *sitter.Node) *ast.Identifier {
	return &ast.Identifier{Loc: c.loc(n), Name: c.text(n)}
}

func lastNamedOfType(n *sitter.Node, typ string) *sitter.Node {
	var found *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			found = child
		}
	}

	return found
}
