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

package analyzer_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/annomark/analyzer"
)

// TestAnalyze runs the full pipeline over the txtar fixtures in testdata.
// Each archive holds TypeScript sources, an optional "options" file with
// one option name per line, and a "diagnostics" file listing the expected
// output in source order.
func TestAnalyze(t *testing.T) {
	t.Parallel()

	fixtures, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, fixture := range fixtures {
		t.Run(strings.TrimSuffix(filepath.Base(fixture), ".txtar"), func(t *testing.T) {
			t.Parallel()

			archive, err := txtar.ParseFile(fixture)
			require.NoError(t, err)

			var opts Options
			var want []string
			type source struct {
				name string
				data []byte
			}
			var sources []source

			for _, f := range archive.Files {
				switch f.Name {
				case "options":
					opts = append(opts, parseOptions(t, f.Data)...)

				case "diagnostics":
					for _, line := range strings.Split(string(f.Data), "\n") {
						if line = strings.TrimSpace(line); line != "" {
							want = append(want, line)
						}
					}

				default:
					sources = append(sources, source{name: f.Name, data: f.Data})
				}
			}

			a := New(opts...)

			var got []string
			for _, src := range sources {
				ds, err := a.Analyze(context.Background(), src.name, src.data)
				require.NoError(t, err)

				for _, d := range ds {
					got = append(got, d.String())
				}
			}

			assert.Equal(t, want, got)
		})
	}
}

func parseOptions(t *testing.T, data []byte) []Option {
	t.Helper()

	var opts []Option
	for _, line := range strings.Split(string(data), "\n") {
		switch line = strings.TrimSpace(line); line {
		case "":

		case "parameters":
			opts = append(opts, WithParameters(true))

		case "tsx":
			opts = append(opts, WithTSX(true))

		default:
			t.Fatalf("unknown option %q", line)
		}
	}

	return opts
}
