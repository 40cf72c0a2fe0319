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

// runOptions represent configuration options for the annomark analyzer.
type runOptions struct {
	// parameters enables diagnostics for unused parameters.
	parameters bool

	// tsx selects the TSX dialect.
	tsx bool

	// ignorePrefix exempts bindings whose name starts with the prefix.
	ignorePrefix string
}

// defaultRunOptions initializes and returns a new runOptions instance with
// default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		parameters:   false,
		tsx:          false,
		ignorePrefix: "_",
	}
}
