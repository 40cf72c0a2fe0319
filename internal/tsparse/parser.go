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

// Package tsparse turns TypeScript source into the tagged syntax tree of
// [fillmore-labs.com/annomark/internal/ast].
//
// Parsing is done with tree-sitter. The conversion is tolerant: constructs
// outside the analyzed subset are dropped, not errors, so partial and even
// syntactically broken files still yield a usable tree.
package tsparse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/annomark/internal/ast"
)

// Option configures a [Parser].
type Option func(*Parser)

// WithTSX selects the TSX dialect instead of plain TypeScript.
func WithTSX(enabled bool) Option {
	return func(p *Parser) {
		if enabled {
			p.lang = tsx.GetLanguage()
		} else {
			p.lang = typescript.GetLanguage()
		}
	}
}

// Parser parses TypeScript sources. Each Parse call creates its own
// tree-sitter parser, so a Parser is safe for concurrent use.
type Parser struct {
	lang *sitter.Language
}

// NewParser creates a TypeScript parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{lang: typescript.GetLanguage()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses src and converts the concrete tree into an [*ast.Program].
// Erroneous regions of the source are skipped rather than reported; the
// only error returned is a parser failure itself.
func (p *Parser) Parse(ctx context.Context, src []byte) (*ast.Program, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tsparse: %w", err)
	}
	defer tree.Close()

	c := &converter{src: src}

	return c.program(tree.RootNode()), nil
}
