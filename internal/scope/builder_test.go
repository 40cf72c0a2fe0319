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

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/annomark/internal/ast"
	. "fillmore-labs.com/annomark/internal/scope"
)

func TestBuild_SyntheticRoot(t *testing.T) {
	t.Parallel()

	program := &ast.Program{}
	info := Build(program)

	require.NotNil(t, info.Root)
	assert.Equal(t, Global, info.Root.Kind)
	assert.Nil(t, info.Root.Node)

	require.Len(t, info.Root.Children, 1)
	assert.Same(t, info.Module, info.Root.Children[0])
	assert.Equal(t, Module, info.Module.Kind)
	assert.Same(t, info.Module, info.ScopeOf(program))
}

func TestBuild_Declarations(t *testing.T) {
	t.Parallel()

	fn := &ast.FunctionDeclaration{
		ID:     &ast.Identifier{Name: "handle"},
		Params: []*ast.Parameter{{Name: &ast.Identifier{Name: "req"}}},
		Body:   &ast.BlockStatement{},
	}
	program := &ast.Program{Body: []ast.Node{
		&ast.ImportDeclaration{
			Source: "./api",
			Specifiers: []*ast.ImportSpecifier{
				{Local: &ast.Identifier{Name: "Client"}, Imported: "Client"},
			},
		},
		&ast.VariableDeclaration{
			Keyword: "const",
			Declarations: []*ast.VariableDeclarator{
				{ID: &ast.Identifier{Name: "limit"}, Init: &ast.Literal{Raw: "3"}},
			},
		},
		fn,
	}}

	info := Build(program)

	client := info.Module.Lookup("Client")
	require.NotNil(t, client)
	assert.Equal(t, RoleImport, client.Role)

	limit := info.Module.Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, RoleVariable, limit.Role)

	handle := info.Module.Lookup("handle")
	require.NotNil(t, handle)
	assert.Equal(t, RoleFunction, handle.Role)

	fnScope := info.ScopeOf(fn)
	require.NotNil(t, fnScope)
	assert.Equal(t, Function, fnScope.Kind)

	req := fnScope.Lookup("req")
	require.NotNil(t, req)
	assert.Equal(t, RoleParameter, req.Role)
}

func TestBuild_ValueReferences(t *testing.T) {
	t.Parallel()

	program := &ast.Program{Body: []ast.Node{
		&ast.VariableDeclaration{
			Keyword: "const",
			Declarations: []*ast.VariableDeclarator{
				{ID: &ast.Identifier{Name: "used"}, Init: &ast.Literal{Raw: "1"}},
				{ID: &ast.Identifier{Name: "dead"}, Init: &ast.Literal{Raw: "2"}},
			},
		},
		&ast.ExpressionStatement{Expression: &ast.CallExpression{
			Callee:    &ast.Identifier{Name: "console"},
			Arguments: []ast.Node{&ast.Identifier{Name: "used"}},
		}},
	}}

	info := Build(program)

	assert.True(t, info.Module.Lookup("used").Used())
	assert.False(t, info.Module.Lookup("dead").Used())
}

func TestBuild_TypePositionsIgnored(t *testing.T) {
	t.Parallel()

	// Annotation-only references stay unmarked here; resolving them is
	// the mark pass's job.
	id := &ast.Identifier{
		Name: "cfg",
		TypeAnnotation: &ast.TypeAnnotation{Type: &ast.TypeReference{
			Name: &ast.Identifier{Name: "Config"},
		}},
	}
	program := &ast.Program{Body: []ast.Node{
		&ast.ImportDeclaration{
			Source: "./config",
			Specifiers: []*ast.ImportSpecifier{
				{Local: &ast.Identifier{Name: "Config"}, Imported: "Config"},
			},
		},
		&ast.VariableDeclaration{
			Keyword:      "let",
			Declarations: []*ast.VariableDeclarator{{ID: id}},
		},
	}}

	info := Build(program)

	assert.False(t, info.Module.Lookup("Config").Used())
}

func TestBuild_ClassScopes(t *testing.T) {
	t.Parallel()

	method := &ast.FunctionExpression{
		Params: []*ast.Parameter{{Name: &ast.Identifier{Name: "input"}}},
		Body: &ast.BlockStatement{Body: []ast.Node{
			&ast.ReturnStatement{Argument: &ast.Identifier{Name: "input"}},
		}},
	}
	body := &ast.ClassBody{Body: []ast.Node{
		&ast.MethodDefinition{Key: &ast.Identifier{Name: "run"}, Value: method},
	}}
	cls := &ast.ClassDeclaration{ID: &ast.Identifier{Name: "Runner"}, Body: body}
	program := &ast.Program{Body: []ast.Node{cls}}

	info := Build(program)

	runner := info.Module.Lookup("Runner")
	require.NotNil(t, runner)
	assert.Equal(t, RoleClass, runner.Role)

	classScope := info.ScopeOf(body)
	require.NotNil(t, classScope)
	assert.Equal(t, Class, classScope.Kind)

	methodScope := info.ScopeOf(method)
	require.NotNil(t, methodScope)
	assert.Same(t, classScope, methodScope.Parent)

	input := methodScope.Lookup("input")
	require.NotNil(t, input)
	assert.True(t, input.Used(), "parameter read in return statement")
}

func TestBuild_NestedBlocks(t *testing.T) {
	t.Parallel()

	inner := &ast.BlockStatement{Body: []ast.Node{
		&ast.VariableDeclaration{
			Keyword:      "let",
			Declarations: []*ast.VariableDeclarator{{ID: &ast.Identifier{Name: "tmp"}}},
		},
	}}
	fn := &ast.FunctionDeclaration{
		ID:   &ast.Identifier{Name: "work"},
		Body: &ast.BlockStatement{Body: []ast.Node{inner}},
	}

	info := Build(&ast.Program{Body: []ast.Node{fn}})

	blockScope := info.ScopeOf(inner)
	require.NotNil(t, blockScope)
	assert.Equal(t, Block, blockScope.Kind)
	assert.NotNil(t, blockScope.Lookup("tmp"))
	assert.Same(t, info.ScopeOf(fn), blockScope.Parent)
}
