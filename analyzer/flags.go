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

import "flag"

// RegisterFlags binds the analyzer's options to command line flag values.
// A nil flag set value defaults to the program's command line.
func (a *Analyzer) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.BoolVar(&a.opts.parameters, "parameters", a.opts.parameters, "report unused function parameters")
	flags.StringVar(&a.opts.ignorePrefix, "ignore-prefix", a.opts.ignorePrefix, "name prefix exempt from diagnostics")
}
