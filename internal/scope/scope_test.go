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

	. "fillmore-labs.com/annomark/internal/scope"
)

func TestScope_Declare(t *testing.T) {
	t.Parallel()

	s := NewScope(Module, nil, nil)

	v := s.Declare("x", RoleVariable, nil)
	require.NotNil(t, v)
	assert.Equal(t, "x", v.Name)
	assert.False(t, v.Used())

	// Redeclaration keeps variables unique per scope.
	again := s.Declare("x", RoleVariable, nil)
	assert.Same(t, v, again)
}

func TestScope_Resolve(t *testing.T) {
	t.Parallel()

	module := NewScope(Module, nil, nil)
	fn := NewScope(Function, nil, module)

	outer := module.Declare("x", RoleVariable, nil)
	inner := fn.Declare("x", RoleVariable, nil)

	assert.Same(t, inner, fn.Resolve("x"))
	assert.Same(t, outer, module.Resolve("x"))
	assert.Nil(t, fn.Resolve("y"))
}

func TestScope_Tree(t *testing.T) {
	t.Parallel()

	root := NewScope(Global, nil, nil)
	module := NewScope(Module, nil, root)
	fn := NewScope(Function, nil, module)

	require.Len(t, root.Children, 1)
	assert.Same(t, module, root.Children[0])
	assert.Same(t, root, module.Parent)
	assert.Same(t, module, fn.Parent)
	assert.Nil(t, root.Parent)
}

func TestScope_VariablesOrder(t *testing.T) {
	t.Parallel()

	s := NewScope(Module, nil, nil)
	for _, name := range []string{"c", "a", "b", "a"} {
		s.Declare(name, RoleVariable, nil)
	}

	var got []string
	for v := range s.Variables() {
		got = append(got, v.Name)
	}

	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestVariable_MarkUsed(t *testing.T) {
	t.Parallel()

	s := NewScope(Module, nil, nil)
	v := s.Declare("x", RoleVariable, nil)

	require.False(t, v.Used())
	v.MarkUsed()
	assert.True(t, v.Used())
	v.MarkUsed()
	assert.True(t, v.Used())
}

func TestKindName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "global", Global.Name())
	assert.Equal(t, "module", Module.Name())
	assert.Equal(t, "function", Function.Name())
	assert.Equal(t, "class", Class.Name())
	assert.Equal(t, "block", Block.Name())
}
