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

package capture

import (
	"go/ast"
	"go/types"
)

// Class is the scope classification of a receiver root relative to a callback.
type Class uint8

//go:generate go tool stringer -type Class -linecomment
const (
	// Indeterminate is a root that does not resolve to a variable declaration.
	Indeterminate Class = iota // indeterminate

	// Parameter is a callback parameter or a variable declared inside the callback.
	Parameter // parameter

	// Captured is a variable declared in a scope enclosing the callback.
	Captured // captured
)

// Classifier classifies receiver roots relative to one callback literal.
type Classifier struct {
	Info *types.Info

	// Lit is the callback.
	Lit *ast.FuncLit

	// Params are the names of the callback's parameters.
	Params map[string]struct{}

	// PackageVars enables classifying package-level variables as captured.
	PackageVars bool
}

// Classify returns the class of the root of path and the root variable, if any.
func (c Classifier) Classify(path AccessPath) (Class, *types.Var) {
	if path.Root == nil {
		return Indeterminate, nil
	}

	if path.Qualifier == "" {
		if _, ok := c.Params[path.Root.Name]; ok {
			return Parameter, nil
		}
	}

	v, ok := c.Info.Uses[path.Root].(*types.Var)
	if !ok || v.IsField() {
		return Indeterminate, nil
	}

	if c.Lit != nil && c.Lit.Pos() <= v.Pos() && v.Pos() < c.Lit.End() {
		return Parameter, v // local variable, possibly derived from a parameter
	}

	if (path.Qualifier != "" || packageLevel(v)) && !c.PackageVars {
		return Indeterminate, v
	}

	return Captured, v
}

// packageLevel reports whether v is declared at package level, in this or another package.
func packageLevel(v *types.Var) bool {
	pkg := v.Pkg()

	return pkg != nil && v.Parent() == pkg.Scope()
}
