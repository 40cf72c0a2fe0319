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

// Package analyzer implements the annomark unused-variable analysis.
//
// # Overview
//
// Annomark finds TypeScript declarations that are never used, without the
// false positives a purely value-level analysis produces on annotated
// code. References can hide in positions ordinary scope analysis never
// visits:
//
//	import { Component, OnInit, Config } from "./app";
//
//	@Component(options)
//	export class Dashboard implements OnInit {
//	    setup(): Config | null { return null; }
//	}
//
// Component, OnInit and Config are all used, yet none appears in a value
// position. A mark pass resolves decorator, implements-list and
// type-annotation references and flips the usage flags of the matching
// declarations before the unused check reads them.
//
// # Pipeline
//
//   - parse the source with tree-sitter into a tagged syntax tree
//   - build the scope tree, recording value-level references
//   - traverse the syntax tree, dispatching mark handlers per node kind
//   - report every declaration whose usage flag is still unset
package analyzer
