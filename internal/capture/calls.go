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

// Package capture finds method calls inside callback bodies and classifies their receivers.
package capture

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"iter"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ifacecapture/internal/resolve"
)

// ErrUnsupported is returned for receivers that are not a chain of field selections rooted at an identifier.
var ErrUnsupported = errors.New("unsupported receiver")

// AccessPath is a receiver expression rooted at an identifier, like outer.A.B.
type AccessPath struct {
	// Root is the identifier the chain starts from.
	Root *ast.Ident

	// Qualifier is the package name of a qualified root like pkg.Var.
	Qualifier string

	// Fields are the selected field names in source order, empty for a bare identifier.
	Fields []string
}

// String renders the path in dotted form.
func (a AccessPath) String() string {
	if a.Root == nil {
		return "<nil>"
	}

	var b strings.Builder

	if a.Qualifier != "" {
		b.WriteString(a.Qualifier)
		b.WriteByte('.')
	}

	b.WriteString(a.Root.Name)

	for _, field := range a.Fields {
		b.WriteByte('.')
		b.WriteString(field)
	}

	return b.String()
}

// Call is a method call found in a callback body.
type Call struct {
	// Path is the receiver of the call.
	Path AccessPath

	// Type is the static type of the receiver.
	Type types.Type

	// Method is the called method.
	Method *types.Func

	// Call is the call expression.
	Call *ast.CallExpr
}

// Calls yields all method calls under body in source order.
//
// Plain function calls, calls of package-level functions, method expressions and conversions are
// not yielded. Method calls on unsupported receivers yield an error wrapping [ErrUnsupported].
func Calls(info *types.Info, body inspector.Cursor) iter.Seq2[Call, error] {
	return func(yield func(Call, error) bool) {
		for c := range body.Preorder((*ast.CallExpr)(nil)) {
			call := c.Node().(*ast.CallExpr)

			fun, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
			if !ok {
				continue // not a selector
			}

			sel, ok := info.Selections[fun]
			if !ok || sel.Kind() != types.MethodVal {
				continue // qualified function or method expression
			}

			method, _ := sel.Obj().(*types.Func)

			path, err := PathOf(info, fun.X)
			if err != nil {
				err = fmt.Errorf("call of %s: %w", method.Name(), err)
			}

			if !yield(Call{Path: path, Type: sel.Recv(), Method: method, Call: call}, err) {
				return
			}
		}
	}
}

// PathOf follows a receiver expression through field selections to its root identifier.
//
// Parentheses and explicit dereferences are transparent. Receivers rooted in index expressions,
// call results or anything else than an identifier return [ErrUnsupported].
func PathOf(info *types.Info, recv ast.Expr) (AccessPath, error) {
	var fields []string // reversed

	expr := recv
	for range resolve.MaxDepth {
		switch e := expr.(type) {
		case *ast.Ident:
			slices.Reverse(fields)

			return AccessPath{Root: e, Fields: fields}, nil

		case *ast.SelectorExpr:
			if sel, ok := info.Selections[e]; ok {
				if sel.Kind() != types.FieldVal {
					return AccessPath{}, fmt.Errorf("%w: method value", ErrUnsupported)
				}

				fields = append(fields, e.Sel.Name)
				expr = e.X

				continue
			}

			if pkg, ok := e.X.(*ast.Ident); ok {
				if _, ok := info.Uses[pkg].(*types.PkgName); ok {
					slices.Reverse(fields)

					return AccessPath{Root: e.Sel, Qualifier: pkg.Name, Fields: fields}, nil
				}
			}

			return AccessPath{}, fmt.Errorf("%w: unresolved selector %s", ErrUnsupported, e.Sel.Name)

		case *ast.ParenExpr:
			expr = e.X

		case *ast.StarExpr:
			expr = e.X

		default:
			return AccessPath{}, fmt.Errorf("%w: %s", ErrUnsupported, astutil.NodeDescription(e))
		}
	}

	return AccessPath{}, fmt.Errorf("%w: %w", ErrUnsupported, resolve.ErrTooDeep)
}
