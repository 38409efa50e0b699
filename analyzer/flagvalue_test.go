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
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/ifacecapture/analyzer"
	"fillmore-labs.com/ifacecapture/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Flags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.PackageVars,
			args:    []string{"-method-match"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.MethodMatch,
			args:    []string{"-method-match=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.MethodMatch,
			args:    []string{"-method-match=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := tt.initial

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.MethodMatch
			fv := NewFlagValue(&flags, value)
			fs.Var(fv, "method-match", "match methods")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("MethodMatch enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if flags.Enabled(config.PackageVars) != tt.initial.Enabled(config.PackageVars) {
				t.Errorf("PackageVars changed to %v", flags.Enabled(config.PackageVars))
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Flags

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewFlagValue(&flags, config.MethodMatch), "method-match", "match methods")

	if err := fs.Parse([]string{"-method-match=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.Default

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewFlagValue(&flags, config.PackageVars)
	fs.Var(fv, "package-vars", "treat package-level variables as captured")

	const expectedUsage = `
  -package-vars
    	treat package-level variables as captured (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
