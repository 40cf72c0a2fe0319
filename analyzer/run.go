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

package analyzer

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/annomark/internal/ast"
	"fillmore-labs.com/annomark/internal/mark"
	"fillmore-labs.com/annomark/internal/scope"
	"fillmore-labs.com/annomark/internal/unused"
)

// Analyze runs the full pipeline over one source file and returns its
// diagnostics in source order.
func (a *Analyzer) Analyze(ctx context.Context, path string, src []byte) ([]Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "Annomark")
	defer task.End()

	program, err := a.parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}

	info := a.analyze(ctx, program)

	ds := unused.Check(info, unused.Options{
		Parameters:   a.opts.parameters,
		IgnorePrefix: a.opts.ignorePrefix,
	})

	diagnostics := make([]Diagnostic, 0, len(ds))
	for _, d := range ds {
		diagnostics = append(diagnostics, Diagnostic{
			Path:    path,
			Pos:     d.Pos,
			Message: d.Message,
		})
	}

	return diagnostics, nil
}

// analyze builds the scope tree and runs the mark pass over the program.
func (a *Analyzer) analyze(ctx context.Context, program *ast.Program) *scope.Info {
	defer trace.StartRegion(ctx, "Mark").End()

	info := scope.Build(program)

	d := &dispatcher{
		info:     info,
		handlers: mark.Handlers(),
		current:  info.Module,
	}
	ast.Walk(program, d)

	return info
}

// dispatcher drives the mark handlers during the host traversal, tracking
// the lexical scope active at each node.
type dispatcher struct {
	info     *scope.Info
	handlers map[ast.Kind]mark.Handler

	current *scope.Scope
	stack   []*scope.Scope
}

// Enter implements [ast.Visitor]. Nodes that own a scope switch the
// current scope before their handler runs, so handlers observe the scope
// active inside the node, matching the host's scope recovery semantics.
func (d *dispatcher) Enter(n, parent ast.Node) bool {
	d.stack = append(d.stack, d.current)
	if sc := d.info.ScopeOf(n); sc != nil {
		d.current = sc
	}

	if h, ok := d.handlers[n.Kind()]; ok {
		h(n, mark.Context{Parent: parent, Scope: d.current})
	}

	return true
}

// Leave implements [ast.Visitor].
func (d *dispatcher) Leave(ast.Node) {
	d.current = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
}
