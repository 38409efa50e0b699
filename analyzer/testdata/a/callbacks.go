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

type Repo interface {
	Create() error
}

type DB struct{}

func (*DB) Create() error { return nil }

func (db *DB) Transaction(fn func(tx Repo) error) error { return fn(db) }

func simple(db *DB) {
	_ = db.Transaction(func(tx Repo) error {
		_ = tx.Create()
		_ = db.Create() // want "captured variable db implements interface Repo"

		return nil
	})
}

type MyInterface interface {
	Do()
}

type MyImpl struct{}

func (*MyImpl) Do() {}

type Outer struct {
	A MyImpl
}

func (o *Outer) GetMyImpl() *MyImpl { return &o.A }

type Outer3 struct {
	B Outer
}

func run(fn func(i MyInterface)) { fn(&MyImpl{}) }

func paths() {
	var (
		impl     MyImpl
		outer2   Outer
		outer3   Outer3
		outerArr [2]MyImpl
		captured MyInterface = &impl
	)

	run(func(i MyInterface) {
		i.Do()
		impl.Do()               // want "captured variable impl implements interface MyInterface"
		outer2.A.Do()           // want "captured variable outer2.A implements interface MyInterface"
		outer3.B.A.Do()         // want "captured variable outer3.B.A implements interface MyInterface"
		(outer2.A).Do()         // want "captured variable outer2.A implements interface MyInterface"
		captured.Do()           // want "captured variable captured implements interface MyInterface"
		outer2.GetMyImpl().Do() // call results are not followed
		outerArr[0].Do()        // index expressions are not followed
	})
}

func derived() {
	run(func(i MyInterface) {
		local := i
		local.Do()

		other := &MyImpl{}
		other.Do()
	})
}

func each(fn func(n int)) { fn(0) }

func anything(fn func(v any)) { fn(nil) }

func noInterface() {
	var impl MyImpl

	each(func(n int) { impl.Do() })
	anything(func(v any) { impl.Do() })

	fn := func(i MyInterface) { impl.Do() } // not a call argument
	run(fn)
}
