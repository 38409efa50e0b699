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

package config

// Flags holds the behavior switches of an analyzer run.
type Flags uint8

const (
	// IncludeGenerated enables diagnostics in generated files.
	IncludeGenerated Flags = 1 << iota

	// PackageVars treats package-level variables as captured.
	PackageVars

	// MethodMatch only reports calls of methods that belong to the bound interface.
	MethodMatch
)

// Default are the flags of an unconfigured analyzer.
const Default = PackageVars

// Set enables or disables flag.
func (f *Flags) Set(flag Flags, value bool) {
	if value {
		*f |= flag
	} else {
		*f &^= flag
	}
}

// Enabled reports whether flag is set.
func (f Flags) Enabled(flag Flags) bool {
	return f&flag == flag
}
