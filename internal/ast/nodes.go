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

// Program is the root node of a parsed source file.
type Program struct {
	Loc
	Body []Node
}

// Identifier is a name in binding or reference position. In annotated
// binding positions it may carry an inline type annotation.
type Identifier struct {
	Loc
	Name           string
	TypeAnnotation *TypeAnnotation
}

// Literal is a primitive literal value. Only the raw source text is kept.
type Literal struct {
	Loc
	Raw string
}

// ImportDeclaration binds the specifiers of one import statement.
type ImportDeclaration struct {
	Loc
	Source     string
	Specifiers []*ImportSpecifier
}

// ImportSpecifier is a single imported binding. Imported is the exported
// name at the source module; it equals Local.Name unless aliased.
type ImportSpecifier struct {
	Loc
	Local     *Identifier
	Imported  string
	Default   bool
	Namespace bool
}

// VariableDeclaration is a var, let or const statement.
type VariableDeclaration struct {
	Loc
	Keyword      string // "var", "let" or "const"
	Exported     bool
	Declarations []*VariableDeclarator
}

// VariableDeclarator is one name/initializer pair of a declaration.
type VariableDeclarator struct {
	Loc
	ID   *Identifier
	Init Node
}

// Parameter is a declared function or method parameter.
type Parameter struct {
	Loc
	Decorators []*Decorator
	Name       *Identifier
	Default    Node
}

// FunctionDeclaration is a named function statement.
type FunctionDeclaration struct {
	Loc
	ID         *Identifier
	Exported   bool
	Params     []*Parameter
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

// FunctionExpression is a function in expression or method-value position.
type FunctionExpression struct {
	Loc
	ID         *Identifier
	Params     []*Parameter
	ReturnType *TypeAnnotation
	Body       *BlockStatement
}

// ArrowFunction is an arrow function expression. Body is either a
// [*BlockStatement] or a bare expression.
type ArrowFunction struct {
	Loc
	Params     []*Parameter
	ReturnType *TypeAnnotation
	Body       Node
}

// Decorator is attached metadata syntax on a declaration. Front ends differ
// in how they encode the decorated expression: some set Name or Callee
// directly, others wrap the identifier or factory call in Expression. All
// fields are optional and none excludes another.
type Decorator struct {
	Loc
	Name       string
	Expression Node
	Callee     Node
}

// ClassDeclaration is a class statement, optionally decorated and
// optionally declaring interface conformance.
type ClassDeclaration struct {
	Loc
	Decorators []*Decorator
	ID         *Identifier
	Exported   bool
	SuperClass Node
	Implements []*ClassImplements
	Body       *ClassBody
}

// ClassImplements is one entry of a class implements list.
type ClassImplements struct {
	Loc
	Expression Node
}

// ClassBody holds the member declarations of a class.
type ClassBody struct {
	Loc
	Body []Node
}

// PropertyDefinition is a class field member.
type PropertyDefinition struct {
	Loc
	Decorators     []*Decorator
	Key            Node
	TypeAnnotation *TypeAnnotation
	Value          Node
}

// MethodDefinition is a class method member.
type MethodDefinition struct {
	Loc
	Decorators []*Decorator
	Key        Node
	Value      *FunctionExpression
}

// CallExpression is an invocation.
type CallExpression struct {
	Loc
	Callee    Node
	Arguments []Node
}

// NewExpression is a constructor invocation.
type NewExpression struct {
	Loc
	Callee    Node
	Arguments []Node
}

// MemberExpression is a property access. Property is an expression when
// Computed, an [*Identifier] otherwise.
type MemberExpression struct {
	Loc
	Object   Node
	Property Node
	Computed bool
}

// AssignmentExpression is a plain or compound assignment.
type AssignmentExpression struct {
	Loc
	Left  Node
	Right Node
}

// ExpressionStatement wraps an expression in statement position.
type ExpressionStatement struct {
	Loc
	Expression Node
}

// ReturnStatement is a return, with an optional argument.
type ReturnStatement struct {
	Loc
	Argument Node
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Loc
	Body []Node
}

// Kind implements [Node].
func (*ArrowFunction) Kind() Kind        { return KindArrowFunction }
func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }
func (*BlockStatement) Kind() Kind       { return KindBlockStatement }
func (*CallExpression) Kind() Kind       { return KindCallExpression }
func (*ClassBody) Kind() Kind            { return KindClassBody }
func (*ClassDeclaration) Kind() Kind     { return KindClassDeclaration }
func (*ClassImplements) Kind() Kind      { return KindClassImplements }
func (*Decorator) Kind() Kind            { return KindDecorator }
func (*ExpressionStatement) Kind() Kind  { return KindExpressionStatement }
func (*FunctionDeclaration) Kind() Kind  { return KindFunctionDeclaration }
func (*FunctionExpression) Kind() Kind   { return KindFunctionExpression }
func (*Identifier) Kind() Kind           { return KindIdentifier }
func (*ImportDeclaration) Kind() Kind    { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind      { return KindImportSpecifier }
func (*Literal) Kind() Kind              { return KindLiteral }
func (*MemberExpression) Kind() Kind     { return KindMemberExpression }
func (*MethodDefinition) Kind() Kind     { return KindMethodDefinition }
func (*NewExpression) Kind() Kind        { return KindNewExpression }
func (*Parameter) Kind() Kind            { return KindParameter }
func (*Program) Kind() Kind              { return KindProgram }
func (*PropertyDefinition) Kind() Kind   { return KindPropertyDefinition }
func (*ReturnStatement) Kind() Kind      { return KindReturnStatement }
func (*VariableDeclaration) Kind() Kind  { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind   { return KindVariableDeclarator }
