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

import (
	"iter"

	"fillmore-labs.com/annomark/internal/ast"
)

// Kind tags the lexical region a [Scope] covers.
type Kind uint8

const (
	// Global is the synthetic outermost scope wrapping the analyzed program.
	Global Kind = iota

	// Module is the top-level scope of a source file.
	Module

	// Function covers a function or method body including its parameters.
	Function

	// Class covers a class body.
	Class

	// Block covers a braced statement block.
	Block
)

// Name returns a human-readable name for the scope kind.
func (k Kind) Name() string {
	switch k {
	case Global:
		return "global"
	case Module:
		return "module"
	case Function:
		return "function"
	case Class:
		return "class"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Scope is a lexical region owning a set of named declarations. Scopes form
// a tree: Parent is a non-owning back-reference, nil only at the root.
type Scope struct {
	Kind     Kind
	Node     ast.Node // owning syntax node, nil for the synthetic root
	Parent   *Scope
	Children []*Scope

	vars  map[string]*Variable
	order []string
}

// NewScope creates a scope of the given kind. When parent is non-nil the
// new scope is appended to its child list.
func NewScope(kind Kind, node ast.Node, parent *Scope) *Scope {
	s := &Scope{
		Kind:   kind,
		Node:   node,
		Parent: parent,
		vars:   make(map[string]*Variable),
	}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}

	return s
}

// Declare adds a binding to the scope and returns its [Variable].
// A redeclaration of an existing name returns the original record,
// keeping variables unique per scope.
func (s *Scope) Declare(name string, role Role, decl ast.Node) *Variable {
	if v, ok := s.vars[name]; ok {
		return v
	}

	v := &Variable{Name: name, Role: role, Decl: decl}
	s.vars[name] = v
	s.order = append(s.order, name)

	return v
}

// Lookup returns the variable declared directly in this scope, or nil.
func (s *Scope) Lookup(name string) *Variable {
	return s.vars[name]
}

// Resolve searches this scope and its ancestors for the nearest declaration
// of name, the ordinary lexical resolution used for value references.
func (s *Scope) Resolve(name string) *Variable {
	for cur := s; cur != nil; cur = cur.Parent {
		if v := cur.vars[name]; v != nil {
			return v
		}
	}

	return nil
}

// Variables yields the scope's own declarations in declaration order.
func (s *Scope) Variables() iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		for _, name := range s.order {
			if !yield(s.vars[name]) {
				return
			}
		}
	}
}
