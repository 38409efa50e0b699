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

// Package testsource provides utilities for parsing and type checking Go source code in tests.
//
// It handles the boilerplate of turning a source fragment into a type-checked single file
// package, so tests of the ifacecapture stages can focus on the code under analysis.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Source is a parsed and type-checked single file package.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info

	// Root is a cursor positioned at the file node.
	Root inspector.Cursor
}

// Load parses and type checks a Go source fragment.
// The provided source `src` holds top-level declarations (and optionally imports)
// and is automatically prefixed with the clause of package `test`.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	fset, f := Parse(tb, src)
	pkg, info := Check(tb, fset, f)

	var root inspector.Cursor
	for c := range inspector.New([]*ast.File{f}).Root().Children() {
		root = c
	}

	return Source{Fset: fset, File: f, Pkg: pkg, Info: info, Root: root}
}

// Parse parses a Go source fragment into an AST of package `test`.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const (
		filename = "test.go"
		header   = "package " + testpkg + "\n\n"
	)

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, header+src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST file.
// It creates and returns a fully type-checked *types.Package and *types.Info,
// including the selections needed to tell method calls from other calls.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// FuncLit returns a cursor at the n-th function literal of the source, counting from zero in source order.
func (s Source) FuncLit(tb testing.TB, n int) inspector.Cursor {
	tb.Helper()

	i := 0
	for c := range s.Root.Preorder((*ast.FuncLit)(nil)) {
		if i == n {
			return c
		}
		i++
	}

	tb.Fatalf("Can't find function literal %d, source has %d", n, i)

	return s.Root
}

// Body returns a cursor at the body of the function literal at c.
func Body(c inspector.Cursor) inspector.Cursor {
	return c.ChildAt(edge.FuncLit_Body, -1)
}

// FuncType returns the declared type of the named top-level function.
func (s Source) FuncType(tb testing.TB, name string) *ast.FuncType {
	tb.Helper()

	for _, decl := range s.File.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return fn.Type
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return nil
}
