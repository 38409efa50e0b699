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

// Package resolve normalizes the declared types of callback parameters to interface contracts.
package resolve

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// MaxDepth bounds the number of links followed in selector chains.
//
// Syntax trees are acyclic, the limit only guards against pathological generated input.
const MaxDepth = 64

var (
	// ErrNotInterface is returned for type references that do not denote a non-empty interface.
	ErrNotInterface = errors.New("not an interface")

	// ErrTooDeep is returned for selector chains exceeding [MaxDepth] links.
	ErrTooDeep = errors.New("selector chain too deep")

	// ErrUnresolved is returned for malformed type references or references without type information.
	ErrUnresolved = errors.New("unresolved type reference")
)

// Interface is a type reference resolved to an interface contract.
type Interface struct {
	// Name is the terminal identifier of the reference, "Tx" for "sql.Tx".
	Name string

	// Display is the normalized text of the reference, without type arguments.
	Display string

	// Type is the method set required by the interface.
	Type *types.Interface

	// Pos is the position of the type reference.
	Pos token.Pos
}

// Has reports whether m belongs to the method set of the interface.
func (i Interface) Has(m *types.Func) bool {
	if i.Type == nil || m == nil {
		return false
	}

	for method := range i.Type.Methods() {
		if method.Id() == m.Id() {
			return true
		}
	}

	return false
}

// Resolve resolves the type reference expr of a parameter to an interface contract.
//
// Interfaces without methods, type parameters and all non-interface types resolve to [ErrNotInterface].
// Resolving the same expression again yields the same result.
func Resolve(info *types.Info, expr ast.Expr) (Interface, error) {
	base, err := unwrap(expr)
	if err != nil {
		return Interface{}, err
	}

	var name, display string

	switch e := base.(type) {
	case *ast.InterfaceType:
		display = types.ExprString(e)
		name = display

	case *ast.Ident, *ast.SelectorExpr:
		id, parts, err := chain(e, 0)
		if err != nil {
			return Interface{}, err
		}

		name, display = id.Name, strings.Join(parts, ".")

	default:
		return Interface{}, fmt.Errorf("%s: %w", types.ExprString(expr), ErrNotInterface)
	}

	t := typeOf(info, expr, base)
	if t == nil {
		return Interface{}, fmt.Errorf("%s: %w", display, ErrUnresolved)
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return Interface{}, fmt.Errorf("%s is a type parameter: %w", display, ErrNotInterface)
	}

	iface, ok := t.Underlying().(*types.Interface)
	if !ok {
		return Interface{}, fmt.Errorf("%s: %w", display, ErrNotInterface)
	}

	if iface.NumMethods() == 0 {
		return Interface{}, fmt.Errorf("%s has no methods: %w", display, ErrNotInterface)
	}

	return Interface{Name: name, Display: display, Type: iface, Pos: expr.Pos()}, nil
}

// Terminal follows a possibly qualified type reference like "a.b.c.Name" to its terminal identifier.
// It returns the identifier together with the normalized dotted name of the reference.
func Terminal(expr ast.Expr) (*ast.Ident, string, error) {
	base, err := unwrap(expr)
	if err != nil {
		return nil, "", err
	}

	id, parts, err := chain(base, 0)
	if err != nil {
		return nil, "", err
	}

	return id, strings.Join(parts, "."), nil
}

// unwrap removes parentheses and type arguments around a type reference.
func unwrap(expr ast.Expr) (ast.Expr, error) {
	for range MaxDepth {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.IndexListExpr:
			expr = e.X

		default:
			return expr, nil
		}
	}

	return nil, ErrTooDeep
}

// chain descends a selector chain to its terminal identifier, collecting the qualifier names.
func chain(expr ast.Expr, depth int) (*ast.Ident, []string, error) {
	if depth >= MaxDepth {
		return nil, nil, ErrTooDeep
	}

	switch e := expr.(type) {
	case *ast.Ident:
		return e, []string{e.Name}, nil

	case *ast.SelectorExpr:
		_, qualifiers, err := chain(e.X, depth+1)
		if err != nil {
			return nil, nil, err
		}

		return e.Sel, append(qualifiers, e.Sel.Name), nil

	case nil:
		return nil, nil, fmt.Errorf("missing type: %w", ErrUnresolved)

	default:
		return nil, nil, fmt.Errorf("%s in qualifier: %w", types.ExprString(e), ErrUnresolved)
	}
}

// typeOf queries the type checker for the type of a reference, falling back to the terminal identifier.
func typeOf(info *types.Info, expr, base ast.Expr) types.Type {
	if info == nil {
		return nil
	}

	if t := info.TypeOf(expr); t != nil {
		return t
	}

	if t := info.TypeOf(base); t != nil {
		return t
	}

	var id *ast.Ident
	switch e := base.(type) {
	case *ast.Ident:
		id = e

	case *ast.SelectorExpr:
		id = e.Sel

	default:
		return nil
	}

	if tn, ok := info.Uses[id].(*types.TypeName); ok {
		return tn.Type()
	}

	return nil
}
