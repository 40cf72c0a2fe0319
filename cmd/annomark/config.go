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

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// config is the optional YAML configuration file.
type config struct {
	// Parameters enables diagnostics for unused parameters.
	Parameters bool `yaml:"parameters"`

	// IgnorePrefix exempts bindings whose name starts with the prefix.
	IgnorePrefix string `yaml:"ignore-prefix"`

	// TSX parses sources as TSX.
	TSX bool `yaml:"tsx"`

	// Exclude lists file name patterns to skip, matched against the base
	// name with [filepath.Match].
	Exclude []string `yaml:"exclude"`
}

func defaultConfig() config {
	return config{IgnorePrefix: "_"}
}

func loadConfig(ctx context.Context, fs afs.Service, location string) (config, error) {
	c := defaultConfig()

	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", location, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", location, err)
	}

	return c, nil
}

// excluded reports whether the file name matches an exclude pattern.
func (c config) excluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range c.Exclude {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}

	return false
}
