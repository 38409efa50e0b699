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

// Package report turns captured calls into findings and hands them to a diagnostics sink.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/ifacecapture/internal/astutil"
)

// Finding is a method call on a captured variable that satisfies the interface of a callback parameter.
type Finding struct {
	// Pos and End span the reported call.
	Pos, End token.Pos

	// Path is the dotted access path of the receiver.
	Path string

	// Interface is the name of the matched interface.
	Interface string

	// Method is the name of the called method.
	Method string

	// Param is the name of the callback parameter, empty when unnamed.
	Param string

	// ParamPos is the position of the callback parameter.
	ParamPos token.Pos

	// Callback is the position of the callback literal binding the parameter.
	Callback token.Pos

	// Fix replaces the receiver with the callback parameter, when possible.
	Fix []analysis.TextEdit
}

// Message returns the diagnostic message of the finding.
func (f Finding) Message() string {
	return fmt.Sprintf("captured variable %s implements interface %s", f.Path, f.Interface)
}

// Format renders the finding as "<file>:<line>:<col>: <message>".
func (f Finding) Format(fset *token.FileSet) string {
	return fmt.Sprintf("%s: %s", fset.Position(f.Pos), f.Message())
}

// Diagnostic converts the finding into an [analysis.Diagnostic].
func (f Finding) Diagnostic() analysis.Diagnostic {
	d := analysis.Diagnostic{
		Pos:     f.Pos,
		End:     f.End,
		Message: f.Message(),
	}

	if f.ParamPos.IsValid() {
		msg := "Callback parameter of type " + f.Interface
		if f.Param != "" {
			msg = "Callback parameter " + f.Param
		}

		d.Related = []analysis.RelatedInformation{{Pos: f.ParamPos, Message: msg}}
	}

	if len(f.Fix) > 0 {
		d.SuggestedFixes = []analysis.SuggestedFix{{
			Message:   "Use callback parameter " + f.Param,
			TextEdits: f.Fix,
		}}
	}

	return d
}

// Sink consumes the findings of an analysis run.
type Sink interface {
	// Report consumes a single finding.
	Report(f Finding)

	// InternalError reports an inconsistency of the analyzer itself.
	InternalError(rng analysis.Range, format string, args ...any)
}

// PassSink reports findings as diagnostics of an [analysis.Pass].
type PassSink struct {
	Pass *analysis.Pass
}

// Report implements [Sink].
func (s PassSink) Report(f Finding) {
	s.Pass.Report(f.Diagnostic())
}

// InternalError implements [Sink].
func (s PassSink) InternalError(rng analysis.Range, format string, args ...any) {
	astutil.InternalError(s.Pass, rng, format, args...)
}

// Collector accumulates findings in memory.
type Collector struct {
	Findings []Finding
	Internal []string
}

// Report implements [Sink].
func (c *Collector) Report(f Finding) {
	c.Findings = append(c.Findings, f)
}

// InternalError implements [Sink].
func (c *Collector) InternalError(_ analysis.Range, format string, args ...any) {
	c.Internal = append(c.Internal, fmt.Sprintf(format, args...))
}
