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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ifacecapture/internal/astutil"
	"fillmore-labs.com/ifacecapture/internal/callback"
	"fillmore-labs.com/ifacecapture/internal/capability"
	"fillmore-labs.com/ifacecapture/internal/capture"
	"fillmore-labs.com/ifacecapture/internal/config"
	"fillmore-labs.com/ifacecapture/internal/report"
)

var (
	// ErrResultMissing is returned when a required analyzer result is missing.
	// This typically indicates a configuration error where the analyzer's
	// Requires field is not properly set.
	ErrResultMissing = errors.New("analyzer result missing")

	// ErrOracle is returned when the capability oracle fails to answer.
	ErrOracle = errors.New("capability check failed")
)

// Unit is a type-checked package to analyze.
type Unit struct {
	Fset *token.FileSet
	Pkg  *types.Package
	Info *types.Info

	// Root is the inspector root, its children are the files of the package.
	Root inspector.Cursor
}

// Run executes the ifacecapture analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("ifacecapture: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx, task := trace.NewTask(context.Background(), "IfaceCapture")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	unit := Unit{Fset: p.Fset, Pkg: p.Pkg, Info: p.TypesInfo, Root: in.Root()}

	if err := o.Analyze(ctx, unit, report.PassSink{Pass: p}); err != nil {
		return nil, err
	}

	return nil, nil
}

// Analyze checks all files of a unit and reports findings to sink, file by file.
//
// Cancellation of ctx is checked between files and callbacks. Findings of the current file are dropped then.
func (o *Options) Analyze(ctx context.Context, u Unit, sink report.Sink) error {
	var buf report.Buffer

	// Loop over all files
	for f := range u.Root.Children() {
		if err := ctx.Err(); err != nil {
			return err
		}

		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(u.Fset, file)
		if !currentFile.Valid() {
			sink.InternalError(file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		if err := o.checkFile(ctx, u, currentFile, f, &buf); err != nil {
			return err
		}

		buf.Flush(ctx, sink)
	}

	return nil
}

func (o *Options) checkFile(ctx context.Context, u Unit, currentFile astutil.CurrentFile, f inspector.Cursor, buf *report.Buffer) error {
	defer trace.StartRegion(ctx, "Callbacks").End()

	for site := range callback.Sites(f) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if suppressed(site) {
			continue
		}

		if err := o.checkCallback(ctx, u, currentFile, site, buf); err != nil {
			return err
		}
	}

	return nil
}

// suppressed reports whether the function declaration enclosing c has a nolint directive.
func suppressed(c inspector.Cursor) bool {
	for d := range c.Enclosing((*ast.FuncDecl)(nil)) {
		return astutil.DocHasNoLint(d.Node().(*ast.FuncDecl).Doc)
	}

	return false
}

// checkCallback reports the method calls on captured variables in the callback at site.
func (o *Options) checkCallback(ctx context.Context, u Unit, currentFile astutil.CurrentFile, site inspector.Cursor, buf *report.Buffer) error {
	lit := site.Node().(*ast.FuncLit)
	logger := o.logger()

	sig := callback.SignatureOf(lit)
	bindings := callback.Bindings(u.Info, sig, func(p callback.Param, err error) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping callback parameter",
			slog.String("pos", u.Fset.Position(p.Type.Pos()).String()),
			slog.String("param", p.Name),
			slog.Any("reason", err))
	})

	if len(bindings) == 0 {
		return nil
	}

	classifier := capture.Classifier{
		Info:        u.Info,
		Lit:         lit,
		Params:      sig.Names(),
		PackageVars: o.Behavior.Enabled(config.PackageVars),
	}

	methodMatch := o.Behavior.Enabled(config.MethodMatch)
	oracle := o.oracle()

	defer trace.StartRegion(ctx, "Calls").End()

	matched := make([]callback.Binding, 0, len(bindings))

	for call, err := range capture.Calls(u.Info, site.ChildAt(edge.FuncLit_Body, -1)) {
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelDebug, "Skipping method call",
				slog.String("pos", u.Fset.Position(call.Call.Pos()).String()),
				slog.Any("reason", err))

			continue
		}

		if class, _ := classifier.Classify(call.Path); class != capture.Captured {
			continue
		}

		if !capability.Valid(call.Type) {
			continue
		}

		if currentFile.NoLintComment(call.Call.Pos()) {
			continue
		}

		matched = matched[:0]

		for _, b := range bindings {
			if methodMatch && !b.Interface.Has(call.Method) {
				continue
			}

			ok, err := capability.Satisfies(oracle, call.Type, b.Interface.Type)
			if err != nil {
				return fmt.Errorf("%w: %s against %s at %s: %w",
					ErrOracle, call.Path, b.Interface.Display, u.Fset.Position(call.Call.Pos()), err)
			}

			if ok {
				matched = append(matched, b)
			}
		}

		for _, b := range matched {
			f := report.Finding{
				Pos:       call.Call.Pos(),
				End:       call.Call.End(),
				Path:      call.Path.String(),
				Interface: b.Interface.Display,
				Method:    call.Method.Name(),
				Param:     b.Param.Name,
				ParamPos:  paramPos(b.Param),
				Callback:  lit.Pos(),
			}

			if len(matched) == 1 {
				f.Fix = fix(u, call, b)
			}

			if !buf.Add(f) {
				logger.LogAttrs(ctx, slog.LevelDebug, "Nested callback replaces finding",
					slog.String("pos", u.Fset.Position(f.Pos).String()),
					slog.String("path", f.Path),
					slog.String("param", f.Param))
			}
		}
	}

	return nil
}

func paramPos(p callback.Param) token.Pos {
	if p.Ident != nil {
		return p.Ident.Pos()
	}

	return p.Type.Pos()
}

// fix returns an edit replacing the receiver of call with the callback parameter of b.
//
// The parameter must be named, the method must belong to the interface, and the parameter
// must not be shadowed at the call.
func fix(u Unit, call capture.Call, b callback.Binding) []analysis.TextEdit {
	if !b.Param.Named() || !b.Interface.Has(call.Method) {
		return nil
	}

	fun, ok := ast.Unparen(call.Call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	param := u.Info.Defs[b.Param.Ident]
	if param == nil || u.Pkg == nil {
		return nil
	}

	pos := fun.X.Pos()

	scope := u.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return nil
	}

	if _, obj := scope.LookupParent(b.Param.Name, pos); obj != param {
		return nil // shadowed
	}

	return []analysis.TextEdit{{Pos: pos, End: fun.X.End(), NewText: []byte(b.Param.Name)}}
}
