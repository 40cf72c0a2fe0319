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

// Package unused reports declarations whose usage flag is still unset
// after reference tracking and the mark pass have run.
package unused

import (
	"fmt"
	"strings"

	"fillmore-labs.com/annomark/internal/ast"
	"fillmore-labs.com/annomark/internal/scope"
)

// Options configures the unused check.
type Options struct {
	// Parameters enables reporting of unused function parameters.
	Parameters bool

	// IgnorePrefix exempts bindings whose name starts with the prefix.
	// The conventional value is "_".
	IgnorePrefix string
}

// Diagnostic is one unused-declaration finding.
type Diagnostic struct {
	Pos     ast.Position
	Name    string
	Role    scope.Role
	Message string
}

// Check walks the scope tree depth-first and collects a diagnostic for
// every declaration that was never marked used. The synthetic root is
// skipped; it owns no declarations of the analyzed program.
func Check(info *scope.Info, opts Options) []Diagnostic {
	var ds []Diagnostic
	for _, child := range info.Root.Children {
		ds = c{opts: opts}.scope(child, ds)
	}

	return ds
}

type c struct {
	opts Options
}

func (c c) scope(s *scope.Scope, ds []Diagnostic) []Diagnostic {
	for v := range s.Variables() {
		if d, ok := c.diagnose(v); ok {
			ds = append(ds, d)
		}
	}

	for _, child := range s.Children {
		ds = c.scope(child, ds)
	}

	return ds
}

func (c c) diagnose(v *scope.Variable) (Diagnostic, bool) {
	if v.Used() {
		return Diagnostic{}, false
	}

	if v.Role == scope.RoleParameter && !c.opts.Parameters {
		return Diagnostic{}, false
	}

	if c.opts.IgnorePrefix != "" && strings.HasPrefix(v.Name, c.opts.IgnorePrefix) {
		return Diagnostic{}, false
	}

	var pos ast.Position
	if v.Decl != nil {
		pos = v.Decl.Span().Start
	}

	return Diagnostic{
		Pos:     pos,
		Name:    v.Name,
		Role:    v.Role,
		Message: fmt.Sprintf("%s %q is declared but never used", v.Role.Name(), v.Name),
	}, true
}
