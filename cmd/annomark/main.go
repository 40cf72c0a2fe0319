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

// Command annomark reports unused variables in TypeScript sources,
// resolving references hidden in decorators, implements lists and type
// annotations before judging a declaration unused.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"fillmore-labs.com/annomark/analyzer"
)

// flag values of the root command.
var (
	flagConfig     string
	flagParameters bool
	flagTSX        bool
	flagIgnore     string
	flagVerbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "annomark [flags] path ...",
		Short: "detect unused variables in annotated TypeScript sources",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flagConfig, "config", "", "YAML configuration file")
	root.Flags().BoolVar(&flagParameters, "parameters", false, "report unused function parameters")
	root.Flags().BoolVar(&flagTSX, "tsx", false, "parse sources as TSX")
	root.Flags().StringVar(&flagIgnore, "ignore-prefix", "_", "name prefix exempt from diagnostics")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "annomark:", err)
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fs := afs.New()

	cfg := defaultConfig()
	if flagConfig != "" {
		var err error
		if cfg, err = loadConfig(ctx, fs, flagConfig); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("parameters") {
		cfg.Parameters = flagParameters
	}
	if cmd.Flags().Changed("tsx") {
		cfg.TSX = flagTSX
	}
	if cmd.Flags().Changed("ignore-prefix") {
		cfg.IgnorePrefix = flagIgnore
	}

	opts := analyzer.Options{
		analyzer.WithParameters(cfg.Parameters),
		analyzer.WithTSX(cfg.TSX),
		analyzer.WithIgnorePrefix(cfg.IgnorePrefix),
	}
	log.LogAttrs(ctx, slog.LevelDebug, "configured", opts.LogAttr())

	a := analyzer.New(opts...)

	files, err := collect(args, cfg)
	if err != nil {
		return err
	}

	found := 0
	for _, path := range files {
		src, err := fs.DownloadWithURL(ctx, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		log.LogAttrs(ctx, slog.LevelDebug, "analyzing",
			slog.String("path", path), slog.Int("bytes", len(src)))

		diagnostics, err := a.Analyze(ctx, path, src)
		if err != nil {
			return fmt.Errorf("analyze %s: %w", path, err)
		}

		for _, d := range diagnostics {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		found += len(diagnostics)
	}

	if found > 0 {
		os.Exit(1)
	}

	return nil
}

// collect expands the path arguments into TypeScript source files,
// walking directories recursively.
func collect(args []string, cfg config) ([]string, error) {
	var files []string

	for _, arg := range args {
		stat, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !stat.IsDir() {
			if !cfg.excluded(arg) {
				files = append(files, arg)
			}

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSource(path) || cfg.excluded(path) {
				return nil
			}
			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return true
	default:
		return false
	}
}
