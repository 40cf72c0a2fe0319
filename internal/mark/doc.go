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

// Package mark resolves identifier references hidden in annotation-only
// syntax.
//
// Ordinary reference tracking only sees value positions: calls, property
// accesses, assignment reads. Type annotations, decorators and implements
// lists reference declarations too, but never through a value position, so
// bindings used exclusively there would be reported as unused. This
// package's handlers run during the host traversal and retroactively flip
// the usage flags of such declarations.
//
// Control flow is strictly downward: the dispatcher table routes a node to
// its extractor, extractors decompose irregular node shapes into names,
// and [MarkUsed] mutates the scope chain. Shape irregularities, absent
// optional fields and unresolvable names are never errors; whatever cannot
// be decomposed marks nothing and is skipped.
package mark
