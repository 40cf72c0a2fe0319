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
	"fmt"

	"fillmore-labs.com/annomark/internal/ast"
	"fillmore-labs.com/annomark/internal/tsparse"
)

// Public API constants for the annomark analyzer.
const (
	name = "annomark"
	doc  = `annomark detects unused variables in annotated TypeScript sources`
	url  = "https://pkg.go.dev/fillmore-labs.com/annomark"
)

// Analyzer runs the annomark analysis over single sources. It is
// stateless between calls and safe for concurrent use.
type Analyzer struct {
	opts   *runOptions
	parser *tsparse.Parser
}

// New creates a new instance of the annomark analyzer. It allows for
// programmatic configuration using [Option], which is useful for
// integrating the analysis into other tools.
func New(opts ...Option) *Analyzer {
	r := defaultRunOptions()
	Options(opts).apply(r)

	return &Analyzer{
		opts:   r,
		parser: tsparse.NewParser(tsparse.WithTSX(r.tsx)),
	}
}

// Name reports the analyzer name used in tool integration.
func (*Analyzer) Name() string { return name }

// Doc reports the one-line analyzer documentation.
func (*Analyzer) Doc() string { return doc }

// URL reports the analyzer documentation URL.
func (*Analyzer) URL() string { return url }

// Diagnostic is one finding, located in the analyzed source.
type Diagnostic struct {
	Path    string
	Pos     ast.Position
	Message string
}

// String formats the diagnostic in the conventional path:line:col form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Pos.Line, d.Pos.Column, d.Message)
}
