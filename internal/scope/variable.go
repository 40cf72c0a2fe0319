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

// Role describes what kind of declaration a [Variable] tracks.
type Role uint8

const (
	// RoleVariable is a var, let or const binding.
	RoleVariable Role = iota

	// RoleParameter is a declared function or method parameter.
	RoleParameter

	// RoleFunction is a function declaration name.
	RoleFunction

	// RoleClass is a class declaration name.
	RoleClass

	// RoleImport is an imported binding.
	RoleImport
)

// Name returns the role as it appears in diagnostics.
func (r Role) Name() string {
	switch r {
	case RoleParameter:
		return "parameter"
	case RoleFunction:
		return "function"
	case RoleClass:
		return "class"
	case RoleImport:
		return "import"
	default:
		return "variable"
	}
}

// Variable is a declaration's tracked binding. The usage flag is monotonic
// within one analysis pass: [Variable.MarkUsed] is the only mutation and
// nothing resets it.
type Variable struct {
	Name string
	Role Role
	Decl ast.Node // declaration site, owned by the syntax tree

	used bool
}

// Used reports whether any reference to the binding has been seen.
func (v *Variable) Used() bool { return v.used }

// MarkUsed flips the usage flag. Repeated calls are harmless.
func (v *Variable) MarkUsed() { v.used = true }
