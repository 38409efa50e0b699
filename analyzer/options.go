// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

import (
	"log/slog"
	"time"

	"fillmore-labs.com/ifacecapture/internal/config"
	"fillmore-labs.com/ifacecapture/internal/run"
)

// Option configures specific behavior of a [New] ifacecapture analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
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

func (o Options) apply(r *run.Options) {
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

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option {
	return flagOption{flag: config.IncludeGenerated, value: generated}
}

// WithPackageVars is an [Option] to configure whether package-level variables count as captured.
func WithPackageVars(packageVars bool) Option {
	return flagOption{flag: config.PackageVars, value: packageVars}
}

// WithMethodMatch is an [Option] to only report calls of methods that belong to the callback parameter's interface.
func WithMethodMatch(methodMatch bool) Option {
	return flagOption{flag: config.MethodMatch, value: methodMatch}
}

type flagOption struct {
	flag  config.Flags
	value bool
}

func (o flagOption) apply(r *run.Options) {
	r.Behavior.Set(o.flag, o.value)
}

func (o flagOption) LogAttr() slog.Attr {
	return slog.Bool(flagName(o.flag), o.value)
}

func flagName(f config.Flags) string {
	switch f {
	case config.IncludeGenerated:
		return "generated"

	case config.PackageVars:
		return "package-vars"

	case config.MethodMatch:
		return "method-match"

	default:
		return "unknown"
	}
}

// WithLogger is an [Option] to receive debug information about skipped parameters and calls.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithWorkers is an [Option] to limit the number of packages [Check] analyzes in parallel.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(r *run.Options) {
	r.Workers = o.workers
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}

// WithTimeout is an [Option] to set the time budget per package of [Check].
func WithTimeout(timeout time.Duration) Option { return timeoutOption{timeout: timeout} }

type timeoutOption struct{ timeout time.Duration }

func (o timeoutOption) apply(r *run.Options) {
	r.Timeout = o.timeout
}

func (o timeoutOption) LogAttr() slog.Attr {
	return slog.Duration("timeout", o.timeout)
}
