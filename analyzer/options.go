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

import "log/slog"

// Option configures specific behavior of a [New] annomark analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithParameters is an [Option] to enable diagnostics for unused function
// and method parameters.
func WithParameters(parameters bool) Option { return parametersOption{parameters: parameters} }

type parametersOption struct{ parameters bool }

func (o parametersOption) apply(r *runOptions) {
	r.parameters = o.parameters
}

func (o parametersOption) LogAttr() slog.Attr {
	return slog.Bool("parameters", o.parameters)
}

// WithIgnorePrefix is an [Option] to configure the name prefix exempting a
// binding from diagnostics. The default is "_".
func WithIgnorePrefix(prefix string) Option { return ignorePrefixOption{prefix: prefix} }

type ignorePrefixOption struct{ prefix string }

func (o ignorePrefixOption) apply(r *runOptions) {
	r.ignorePrefix = o.prefix
}

func (o ignorePrefixOption) LogAttr() slog.Attr {
	return slog.String("ignorePrefix", o.prefix)
}

// WithTSX is an [Option] to parse sources as TSX instead of plain
// TypeScript.
func WithTSX(tsx bool) Option { return tsxOption{tsx: tsx} }

type tsxOption struct{ tsx bool }

func (o tsxOption) apply(r *runOptions) {
	r.tsx = o.tsx
}

func (o tsxOption) LogAttr() slog.Attr {
	return slog.Bool("tsx", o.tsx)
}
