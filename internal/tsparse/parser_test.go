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

package tsparse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/annomark/internal/ast"
	. "fillmore-labs.com/annomark/internal/tsparse"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()

	program, err := NewParser().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotNil(t, program)

	return program
}

func TestParse_Imports(t *testing.T) {
	t.Parallel()

	program := parse(t, `
import { Component, OnInit as Init } from "./app";
import Default from "./default";
import * as utils from "./utils";
`)

	require.Len(t, program.Body, 3)

	named, ok := program.Body[0].(*ast.ImportDeclaration)
	require.True(t, ok)
	assert.Equal(t, "./app", named.Source)
	require.Len(t, named.Specifiers, 2)
	assert.Equal(t, "Component", named.Specifiers[0].Local.Name)
	assert.Equal(t, "Component", named.Specifiers[0].Imported)
	assert.Equal(t, "Init", named.Specifiers[1].Local.Name)
	assert.Equal(t, "OnInit", named.Specifiers[1].Imported)

	def, ok := program.Body[1].(*ast.ImportDeclaration)
	require.True(t, ok)
	require.Len(t, def.Specifiers, 1)
	assert.True(t, def.Specifiers[0].Default)
	assert.Equal(t, "Default", def.Specifiers[0].Local.Name)

	ns, ok := program.Body[2].(*ast.ImportDeclaration)
	require.True(t, ok)
	require.Len(t, ns.Specifiers, 1)
	assert.True(t, ns.Specifiers[0].Namespace)
	assert.Equal(t, "utils", ns.Specifiers[0].Local.Name)
}

func TestParse_DecoratedClass(t *testing.T) {
	t.Parallel()

	program := parse(t, `
@Component({ selector: "dash" })
export class Dashboard implements OnInit {
	@Input() title: string;

	setup(): Config | null {
		return null;
	}
}
`)

	require.Len(t, program.Body, 1)
	cls, ok := program.Body[0].(*ast.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Dashboard", cls.ID.Name)

	// Decorator on the exported class, encoded as a wrapped factory call.
	require.Len(t, cls.Decorators, 1)
	call, ok := cls.Decorators[0].Expression.(*ast.CallExpression)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Component", callee.Name)

	require.Len(t, cls.Implements, 1)
	impl, ok := cls.Implements[0].Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "OnInit", impl.Name)

	require.NotNil(t, cls.Body)
	require.Len(t, cls.Body.Body, 2)

	field, ok := cls.Body.Body[0].(*ast.PropertyDefinition)
	require.True(t, ok)
	require.Len(t, field.Decorators, 1)
	fieldDec, ok := field.Decorators[0].Expression.(*ast.CallExpression)
	require.True(t, ok)
	fieldCallee, ok := fieldDec.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Input", fieldCallee.Name)

	method, ok := cls.Body.Body[1].(*ast.MethodDefinition)
	require.True(t, ok)
	require.NotNil(t, method.Value)
	require.NotNil(t, method.Value.ReturnType)

	union, ok := method.Value.ReturnType.Type.(*ast.UnionType)
	require.True(t, ok)
	require.Len(t, union.Types, 2)
	refType, ok := union.Types[0].(*ast.TypeReference)
	require.True(t, ok)
	name, ok := refType.Name.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Config", name.Name)
}

func TestParse_ParameterDecorators(t *testing.T) {
	t.Parallel()

	program := parse(t, `
class Service {
	handle(@Inject(TOKEN) dep: Registry) {}
}
`)

	cls, ok := program.Body[0].(*ast.ClassDeclaration)
	require.True(t, ok)
	method, ok := cls.Body.Body[0].(*ast.MethodDefinition)
	require.True(t, ok)

	require.Len(t, method.Value.Params, 1)
	param := method.Value.Params[0]
	require.Len(t, param.Decorators, 1)

	call, ok := param.Decorators[0].Expression.(*ast.CallExpression)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Inject", callee.Name)

	require.NotNil(t, param.Name)
	assert.Equal(t, "dep", param.Name.Name)
	require.NotNil(t, param.Name.TypeAnnotation)
}

func TestParse_ArrayTypeEncoding(t *testing.T) {
	t.Parallel()

	program := parse(t, `function load(): Promise<Chunk[]> { return fetchAll(); }`)

	fn, ok := program.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	require.NotNil(t, fn.ReturnType)

	outer, ok := fn.ReturnType.Type.(*ast.TypeReference)
	require.True(t, ok)
	outerName, ok := outer.Name.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Promise", outerName.Name)

	require.Len(t, outer.TypeArguments, 1)
	arg, ok := outer.TypeArguments[0].(*ast.TypeReference)
	require.True(t, ok)

	// Foo[] nests the element under the reference's name field.
	arr, ok := arg.Name.(*ast.ArrayType)
	require.True(t, ok)
	elem, ok := arr.Element.(*ast.TypeReference)
	require.True(t, ok)
	elemName, ok := elem.Name.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Chunk", elemName.Name)
}

func TestParse_VariableAnnotations(t *testing.T) {
	t.Parallel()

	program := parse(t, `const registry: Registry = create();`)

	decl, ok := program.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "const", decl.Keyword)
	require.Len(t, decl.Declarations, 1)

	id := decl.Declarations[0].ID
	require.NotNil(t, id)
	assert.Equal(t, "registry", id.Name)
	require.NotNil(t, id.TypeAnnotation)

	refType, ok := id.TypeAnnotation.Type.(*ast.TypeReference)
	require.True(t, ok)
	name, ok := refType.Name.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Registry", name.Name)
}

func TestParse_Positions(t *testing.T) {
	t.Parallel()

	program := parse(t, "const x = 1;\nconst y = 2;\n")

	require.Len(t, program.Body, 2)
	second, ok := program.Body[1].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, 2, second.Span().Start.Line)
	assert.Equal(t, 1, second.Span().Start.Column)
}

func TestParse_ToleratesErrors(t *testing.T) {
	t.Parallel()

	// Broken regions are dropped, not reported.
	program := parse(t, "const ok = 1;\nfunction {{{\n")

	require.NotEmpty(t, program.Body)
}
