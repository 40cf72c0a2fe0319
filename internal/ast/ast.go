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

// Position is a source location, with 1-based Line and Column.
type Position struct {
	Line   int
	Column int
}

// Span is the source range covered by a node.
type Span struct {
	Start Position
	End   Position
}

// Loc is embedded by every node and provides its [Span].
type Loc struct {
	Start Position
	End   Position
}

// Span returns the source range of the node.
func (l Loc) Span() Span { return Span(l) }

// Kind discriminates the node variants of the syntax tree.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind

const (
	// KindInvalid is the zero Kind; no node returns it.
	KindInvalid Kind = iota

	// keep-sorted start
	KindArrayType
	KindArrowFunction
	KindAssignmentExpression
	KindBlockStatement
	KindCallExpression
	KindClassBody
	KindClassDeclaration
	KindClassImplements
	KindDecorator
	KindExpressionStatement
	KindFunctionDeclaration
	KindFunctionExpression
	KindIdentifier
	KindImportDeclaration
	KindImportSpecifier
	KindIntersectionType
	KindKeywordType
	KindLiteral
	KindLiteralType
	KindMemberExpression
	KindMethodDefinition
	KindNewExpression
	KindParameter
	KindProgram
	KindPropertyDefinition
	KindReturnStatement
	KindTupleType
	KindTypeAnnotation
	KindTypeReference
	KindUnionType
	KindVariableDeclaration
	KindVariableDeclarator
	// keep-sorted end
)

// Node is a tagged syntax tree node. Each variant exposes only the fields
// meaningful to its kind; optional fields are nil when absent.
type Node interface {
	Kind() Kind
	Span() Span
}
