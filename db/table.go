// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package db

// table is a database view whose keys are automatically prefixed. It is used
// to carve fixed namespaces out of a shared database.
type table struct {
	db     Database
	prefix string
}

// NewTable creates a view into the given database with all keys prefixed by
// prefix. Panics if db is nil.
func NewTable(db Database, prefix string) Database {
	if db == nil {
		panic("NewTable: nil database")
	}
	return &table{db: db, prefix: prefix}
}

func (t *table) pkey(key string) string { return t.prefix + key }

func (t *table) Has(key string) (bool, error)      { return t.db.Has(t.pkey(key)) }
func (t *table) Get(key string) (string, error)    { return t.db.Get(t.pkey(key)) }
func (t *table) GetBytes(key string) ([]byte, error) { return t.db.GetBytes(t.pkey(key)) }

func (t *table) Put(key, value string) error          { return t.db.Put(t.pkey(key), value) }
func (t *table) PutBytes(key string, value []byte) error { return t.db.PutBytes(t.pkey(key), value) }
func (t *table) Delete(key string) error              { return t.db.Delete(t.pkey(key)) }

func (t *table) NewBatch() Batch {
	return &tableBatch{batch: t.db.NewBatch(), prefix: t.prefix}
}

// tableBatch prefixes all keys written to the underlying batch.
type tableBatch struct {
	batch  Batch
	prefix string
}

func (b *tableBatch) pkey(key string) string { return b.prefix + key }

func (b *tableBatch) Put(key, value string) error { return b.batch.Put(b.pkey(key), value) }

func (b *tableBatch) PutBytes(key string, value []byte) error {
	return b.batch.PutBytes(b.pkey(key), value)
}

func (b *tableBatch) Delete(key string) error { return b.batch.Delete(b.pkey(key)) }

func (b *tableBatch) Apply() error { return b.batch.Apply() }
func (b *tableBatch) Reset()       { b.batch.Reset() }
func (b *tableBatch) Len() uint    { return b.batch.Len() }
