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

package run

import (
	"log/slog"
	"time"

	"fillmore-labs.com/ifacecapture/internal/capability"
	"fillmore-labs.com/ifacecapture/internal/config"
)

// Options represent the configuration of an ifacecapture run.
type Options struct {
	// Behavior holds behavioral switches.
	Behavior config.Flags

	// Logger receives debug information about skipped nodes.
	Logger *slog.Logger

	// Oracle decides whether a receiver type satisfies an interface.
	Oracle capability.Oracle

	// Workers limits the number of packages checked in parallel by a library driver, zero means GOMAXPROCS.
	Workers int

	// Timeout is the time budget per package of a library driver, zero means unlimited.
	Timeout time.Duration
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.Default,
		Logger:   slog.New(slog.DiscardHandler),
		Oracle:   capability.Types,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

func (o *Options) oracle() capability.Oracle {
	if o.Oracle == nil {
		return capability.Types
	}

	return o.Oracle
}
