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

package methodmatch

type Repo interface {
	Create() error
}

type DB struct{}

func (*DB) Create() error { return nil }

func (*DB) Close() error { return nil }

func (db *DB) Transaction(fn func(tx Repo) error) error { return fn(db) }

func methods(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		_ = db.Close()

		return db.Create() // want "captured variable db implements interface Repo"
	})
}
