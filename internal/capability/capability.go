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

// Package capability answers whether a type satisfies an interface contract.
package capability

import (
	"errors"
	"go/types"
)

// ErrInvalidType is returned for missing or invalid types.
var ErrInvalidType = errors.New("invalid type")

// Oracle reports whether the type V satisfies the interface T.
//
// An error means the question could not be answered, it must not be read as either answer.
type Oracle func(V types.Type, T *types.Interface) (bool, error)

// Types is the [Oracle] of the Go type checker.
func Types(V types.Type, T *types.Interface) (bool, error) {
	if !Valid(V) || T == nil {
		return false, ErrInvalidType
	}

	return types.Implements(V, T), nil
}

// Valid reports whether t carries usable type information.
func Valid(t types.Type) bool {
	return t != nil && t != types.Typ[types.Invalid]
}

// Satisfies reports whether V or a pointer to V satisfies T.
//
// Pointer receivers are part of the method set of *V only, but addressable values of type V
// can call them. Both checks are needed.
func Satisfies(o Oracle, V types.Type, T *types.Interface) (bool, error) {
	if V == nil {
		return false, ErrInvalidType
	}

	if ok, err := o(V, T); err != nil || ok {
		return ok, err
	}

	if !pointerCandidate(V) {
		return false, nil
	}

	return o(types.NewPointer(V), T)
}

// pointerCandidate reports whether *V can have more methods than V.
func pointerCandidate(V types.Type) bool {
	switch V.Underlying().(type) {
	case *types.Pointer, *types.Interface:
		return false

	default:
		return true
	}
}
