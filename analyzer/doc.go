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

// Package analyzer implements the ifacecapture static analysis pass.
//
// # Overview
//
// ifacecapture detects method calls on variables captured from an enclosing scope inside a
// callback, when the callback has a parameter of an interface type the captured variable
// also satisfies. This usually means the call should use the parameter instead.
//
// # Example
//
//	db.Transaction(func(tx Repo) error {
//	    if err := tx.Create(); err != nil {  // fine
//	        return err
//	    }
//	    return db.Delete()  // captured variable db implements interface Repo
//	})
//
// The second call runs outside the transaction.
//
// # Scope
//
// Callbacks are function literals passed directly as call arguments. Receivers are followed
// through field selections, parentheses and dereferences to a root variable. Receivers reached
// through index expressions or call results are not reported.
//
// Use [Check] to analyze packages loaded with [Load] without the analysis framework.
package analyzer
