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

// Package callback finds function literals passed as call arguments and their interface-typed parameters.
package callback

import (
	"go/ast"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/ifacecapture/internal/resolve"
)

// Sites yields cursors at all function literals under root that are passed directly,
// possibly parenthesized, as arguments of a call. The signature of the called function does not matter.
func Sites(root inspector.Cursor) iter.Seq[inspector.Cursor] {
	return func(yield func(inspector.Cursor) bool) {
		for c := range root.Preorder((*ast.FuncLit)(nil)) {
			if !isArgument(c) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// isArgument reports whether the node at c is a call argument.
func isArgument(c inspector.Cursor) bool {
	for range resolve.MaxDepth {
		switch e, _ := c.ParentEdge(); e {
		case edge.CallExpr_Args:
			return true

		case edge.ParenExpr_X:
			c = c.Parent()

		default:
			return false
		}
	}

	return false
}

// Param is a declared parameter of a callback.
type Param struct {
	// Name is empty for unnamed parameters.
	Name string

	// Ident is nil for unnamed parameters.
	Ident *ast.Ident

	// Type is the declared type.
	Type ast.Expr
}

// Named reports whether the parameter can be referenced in the body.
func (p Param) Named() bool {
	return p.Name != "" && p.Name != "_"
}

// Signature is the ordered parameter list of a callback.
type Signature struct {
	Params []Param
}

// SignatureOf returns the signature of a function literal.
func SignatureOf(lit *ast.FuncLit) Signature {
	params := lit.Type.Params
	if params == nil {
		return Signature{}
	}

	sig := Signature{Params: make([]Param, 0, params.NumFields())}

	for _, field := range params.List {
		if len(field.Names) == 0 {
			sig.Params = append(sig.Params, Param{Type: field.Type})

			continue
		}

		for _, id := range field.Names {
			sig.Params = append(sig.Params, Param{Name: id.Name, Ident: id, Type: field.Type})
		}
	}

	return sig
}

// Names returns the set of referable parameter names.
func (s Signature) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(s.Params))

	for _, p := range s.Params {
		if p.Named() {
			names[p.Name] = struct{}{}
		}
	}

	return names
}

// Binding pairs a callback parameter with the interface its type resolves to.
type Binding struct {
	Param     Param
	Interface resolve.Interface
}

// Bindings resolves the parameter types of sig and returns the parameters declared with an interface type.
//
// Parameters whose type does not resolve to an interface are passed to skip, when non-nil.
func Bindings(info *types.Info, sig Signature, skip func(p Param, err error)) []Binding {
	var bindings []Binding

	for _, p := range sig.Params {
		iface, err := resolve.Resolve(info, p.Type)
		if err != nil {
			if skip != nil {
				skip(p, err)
			}

			continue
		}

		bindings = append(bindings, Binding{Param: p, Interface: iface})
	}

	return bindings
}
