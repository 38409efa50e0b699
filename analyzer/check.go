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
	"cmp"
	"context"
	"errors"
	"fmt"
	"go/token"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/ifacecapture/internal/report"
	"fillmore-labs.com/ifacecapture/internal/run"
)

// ErrNotTypeChecked is returned for packages loaded without syntax or type information.
var ErrNotTypeChecked = errors.New("package not type checked")

// LoadMode is the [packages.LoadMode] needed by [Check].
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Load loads the packages matching patterns in dir for [Check].
func Load(ctx context.Context, dir string, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{Context: ctx, Dir: dir, Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("ifacecapture: can't load %s: %w", strings.Join(patterns, " "), err)
	}

	return pkgs, nil
}

// Finding is a method call on a captured variable found by [Check].
type Finding struct {
	// Package is the import path of the package containing the call.
	Package string

	// Position is the position of the call.
	Position token.Position

	// Path is the dotted access path of the receiver.
	Path string

	// Interface is the name of the callback parameter's interface.
	Interface string

	// Method is the name of the called method.
	Method string
}

// Message returns the diagnostic message of the finding.
func (f Finding) Message() string {
	return fmt.Sprintf("captured variable %s implements interface %s", f.Path, f.Interface)
}

// String renders the finding as "<file>:<line>:<col>: <message>".
func (f Finding) String() string {
	return f.Position.String() + ": " + f.Message()
}

// Result is the outcome of [Check].
type Result struct {
	// Findings are ordered by file, line and column.
	Findings []Finding

	// Skipped are the import paths of packages that exhausted their time budget.
	Skipped []string

	// Errors are the failures of single packages, other packages are unaffected.
	Errors []error
}

// outcome is the result of a single package.
type outcome struct {
	findings []Finding
	skipped  bool
	errs     []error
}

// Check analyzes already loaded packages in parallel, without the analysis framework.
//
// Packages should be loaded with at least [LoadMode]. A failure of one package is recorded in
// [Result.Errors] and does not stop the others. The returned error is non-nil only when ctx is done
// before all packages are checked.
func Check(ctx context.Context, pkgs []*packages.Package, opts ...Option) (Result, error) {
	r := makeOptions(opts)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(pkgs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, pkg := range pkgs {
		g.Go(func() error {
			outcomes[i] = checkPackage(ctx, r, pkg)

			return ctx.Err() // package failures are recorded in the outcome
		})
	}

	err := g.Wait()

	var res Result

	for i, o := range outcomes {
		res.Findings = append(res.Findings, o.findings...)
		res.Errors = append(res.Errors, o.errs...)

		if o.skipped {
			res.Skipped = append(res.Skipped, pkgs[i].PkgPath)
		}
	}

	slices.SortStableFunc(res.Findings, compareFindings)

	return res, err
}

func checkPackage(ctx context.Context, r *run.Options, pkg *packages.Package) outcome {
	if pkg == nil {
		return outcome{errs: []error{ErrNotTypeChecked}}
	}

	if pkg.Types == nil || pkg.TypesInfo == nil || pkg.Fset == nil {
		return outcome{errs: []error{fmt.Errorf("%s: %w", pkg.PkgPath, ErrNotTypeChecked)}}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)

		defer cancel()
	}

	unit := run.Unit{
		Fset: pkg.Fset,
		Pkg:  pkg.Types,
		Info: pkg.TypesInfo,
		Root: inspector.New(pkg.Syntax).Root(),
	}

	var sink report.Collector

	err := r.Analyze(ctx, unit, &sink)

	var o outcome

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		o.skipped = true

		return o

	case err != nil:
		o.errs = append(o.errs, fmt.Errorf("%s: %w", pkg.PkgPath, err))

		return o
	}

	for _, msg := range sink.Internal {
		o.errs = append(o.errs, fmt.Errorf("%s: internal error: %s", pkg.PkgPath, msg))
	}

	o.findings = make([]Finding, 0, len(sink.Findings))
	for _, f := range sink.Findings {
		o.findings = append(o.findings, Finding{
			Package:   pkg.PkgPath,
			Position:  pkg.Fset.Position(f.Pos),
			Path:      f.Path,
			Interface: f.Interface,
			Method:    f.Method,
		})
	}

	return o
}

func compareFindings(a, b Finding) int {
	return cmp.Or(
		strings.Compare(a.Position.Filename, b.Position.Filename),
		cmp.Compare(a.Position.Line, b.Position.Line),
		cmp.Compare(a.Position.Column, b.Position.Column),
		strings.Compare(a.Interface, b.Interface),
		strings.Compare(a.Path, b.Path),
	)
}
