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

import (
	"log/slog"

	"fillmore-labs.com/ifacecapture/internal/capability"
	"fillmore-labs.com/ifacecapture/internal/config"
	"fillmore-labs.com/ifacecapture/internal/run"
)

// NewFlagValue exposes the behavior flag value for tests.
func NewFlagValue(flags *config.Flags, flag config.Flags) interface {
	Set(s string) error
	String() string
	Get() any
	IsBoolFlag() bool
} {
	return flagValue{flags: flags, flag: flag}
}

// WithOracle replaces the capability oracle in tests.
func WithOracle(o capability.Oracle) Option { return oracleOption{oracle: o} }

type oracleOption struct{ oracle capability.Oracle }

func (o oracleOption) apply(r *run.Options) {
	r.Oracle = o.oracle
}

func (o oracleOption) LogAttr() slog.Attr {
	return slog.Bool("oracle", o.oracle != nil)
}
