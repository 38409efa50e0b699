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

package a

import "test/repo"

var defaultDB DB

func packageVar(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		return defaultDB.Create() // want "captured variable defaultDB implements interface Repo"
	})
}

type Service struct {
	db *DB
}

func (s *Service) Save() error {
	return s.db.Transaction(func(tx Repo) error {
		return s.db.Create() // want "captured variable s.db implements interface Repo"
	})
}

type Tx interface {
	Create() error
}

func both(fn func(r Repo, t Tx) error) error { return fn(nil, nil) }

func multi(db *DB) {
	_ = both(func(r Repo, t Tx) error {
		return db.Create() // want "captured variable db implements interface Repo" "captured variable db implements interface Tx"
	})
}

func pair(fn func(a, b Repo) error) error { return fn(nil, nil) }

func sameInterface(db *DB) {
	_ = pair(func(a, b Repo) error {
		return db.Create() // want "captured variable db implements interface Repo" "captured variable db implements interface Repo"
	})
}

func nested(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		return db.Transaction(func(inner Repo) error { // want "captured variable db implements interface Repo"
			_ = tx.Create() // want "captured variable tx implements interface Repo"

			return db.Create() // want "captured variable db implements interface Repo"
		})
	})
}

func qualified(db *DB) {
	_ = repo.Transaction(func(tx repo.Tx) error {
		_ = repo.Default.Create() // want "captured variable repo.Default implements interface repo.Tx"

		return db.Create() // want "captured variable db implements interface repo.Tx"
	})
}

type Getter[T any] interface {
	Get() T
}

type intSource struct{}

func (intSource) Get() int { return 0 }

func get(fn func(g Getter[int])) { fn(intSource{}) }

func generic() {
	var src intSource

	get(func(g Getter[int]) {
		_ = src.Get() // want "captured variable src implements interface Getter"
	})
}

func literal(db *DB) {
	func(fn func(c interface{ Create() error })) {}(func(c interface{ Create() error }) {
		_ = db.Create() // want "captured variable db implements interface interface"
	})
}

//nolint:ifacecapture
func suppressed(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		return db.Create()
	})
}

func suppressedLine(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		return db.Create() //nolint:ifacecapture
	})
}

func suppressedInline(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		return db.Create(/* inline */) //nolint:ifacecapture
	})
}
