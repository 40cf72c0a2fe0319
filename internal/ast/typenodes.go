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

// TypeAnnotation wraps a type expression in annotation position,
// such as the ": T" following a binding or parameter list.
type TypeAnnotation struct {
	Loc
	Type Node
}

// TypeReference is a named use of a type, possibly parameterized.
//
// Name is usually an [*Identifier]. The front end encodes an
// array-of-reference type like "Foo[]" by nesting an [*ArrayType] under
// Name instead of emitting a sibling array node; consumers must look
// through that wrapper.
type TypeReference struct {
	Loc
	Name          Node
	TypeArguments []Node
}

// ArrayType wraps the element type of an array type.
type ArrayType struct {
	Loc
	Element Node
}

// UnionType combines member types with "|".
type UnionType struct {
	Loc
	Types []Node
}

// IntersectionType combines member types with "&".
type IntersectionType struct {
	Loc
	Types []Node
}

// KeywordType is a predefined type such as "string" or "void".
type KeywordType struct {
	Loc
	Name string
}

// LiteralType is a literal in type position.
type LiteralType struct {
	Loc
	Literal *Literal
}

// TupleType is a fixed-length element type list.
type TupleType struct {
	Loc
	Elements []Node
}

// Kind implements [Node].
func (*ArrayType) Kind() Kind        { return KindArrayType }
func (*IntersectionType) Kind() Kind { return KindIntersectionType }
func (*KeywordType) Kind() Kind      { return KindKeywordType }
func (*LiteralType) Kind() Kind      { return KindLiteralType }
func (*TupleType) Kind() Kind        { return KindTupleType }
func (*TypeAnnotation) Kind() Kind   { return KindTypeAnnotation }
func (*TypeReference) Kind() Kind    { return KindTypeReference }
func (*UnionType) Kind() Kind        { return KindUnionType }
