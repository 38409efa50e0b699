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

package report

import (
	"cmp"
	"context"
	"go/token"
	"runtime/trace"
	"slices"
	"strings"
)

// Buffer collects the findings of one file, removes duplicates and orders them before they reach a [Sink].
//
// Findings of nested callbacks can describe the same call and interface. Findings of a later callback for
// the same call and interface replace those of an earlier one. Since callbacks are visited outside-in, the
// innermost callback wins. Findings of the same callback are all kept, one per binding.
type Buffer struct {
	groups map[key][]Finding
}

type key struct {
	pos   token.Pos
	path  string
	iface string
}

// Add records a finding. It reports false when the finding replaced those of an enclosing callback.
func (b *Buffer) Add(f Finding) bool {
	if b.groups == nil {
		b.groups = make(map[key][]Finding)
	}

	k := key{pos: f.Pos, path: f.Path, iface: f.Interface}

	group := b.groups[k]
	if len(group) > 0 && group[0].Callback != f.Callback {
		b.groups[k] = append(group[:0], f)

		return false
	}

	b.groups[k] = append(group, f)

	return true
}

// Flush reports all buffered findings ordered by position and interface name, then empties the buffer.
func (b *Buffer) Flush(ctx context.Context, sink Sink) {
	if len(b.groups) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	var findings []Finding
	for _, group := range b.groups {
		findings = append(findings, group...)
	}

	slices.SortFunc(findings, compare)

	for _, f := range findings {
		sink.Report(f)
	}

	clear(b.groups)
}

func compare(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.Pos, b.Pos),
		strings.Compare(a.Interface, b.Interface),
		strings.Compare(a.Path, b.Path),
		cmp.Compare(a.ParamPos, b.ParamPos),
	)
}
