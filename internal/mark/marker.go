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

package mark

import "fillmore-labs.com/annomark/internal/scope"

// MarkUsed finds declarations of name on the scope chain above start and
// flips their usage flags. It reports whether at least one declaration
// matched anywhere on the chain.
//
// When start is the synthetic root, the search first descends along first
// children down to a leaf before walking upward: the host scope model
// wraps the analyzed program in an extra scope level, so a search started
// at the true root has to step inside before upward lookup makes sense.
//
// The upward scan does not stop at the first match. Every same-named
// declaration on the chain is marked, including outer shadowed bindings
// unrelated to the triggering reference. Callers rely on this exact
// behavior; see the package tests before changing it.
func MarkUsed(start *scope.Scope, name string) bool {
	if start == nil || name == "" {
		return false
	}

	s := start
	if s.Kind == scope.Global {
		for len(s.Children) > 0 {
			s = s.Children[0]
		}
	}

	found := false
	for ; s != nil; s = s.Parent {
		if v := s.Lookup(name); v != nil {
			v.MarkUsed()
			found = true
		}
	}

	return found
}
