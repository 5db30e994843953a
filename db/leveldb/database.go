// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package leveldb provides a LevelDB-backed implementation of the db.Database
// interface for durable session state.
package leveldb // import "satlink.network/go-satlink/db/leveldb"

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	lderrors "github.com/syndtr/goleveldb/leveldb/errors"

	"satlink.network/go-satlink/db"
)

// Database implements db.Database backed by a LevelDB instance.
type Database struct {
	*leveldb.DB
	path string
}

var _ db.Database = (*Database)(nil)

// LoadDatabase opens or creates the LevelDB database at the given path.
func LoadDatabase(path string) (*Database, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening leveldb at %q", path)
	}
	return &Database{DB: ldb, path: path}, nil
}

// Path returns the file system path of the database.
func (d *Database) Path() string { return d.path }

// Close flushes and closes the underlying database.
func (d *Database) Close() error {
	return errors.Wrap(d.DB.Close(), "closing leveldb")
}

// Has reports whether a key is present.
func (d *Database) Has(key string) (bool, error) {
	has, err := d.DB.Has([]byte(key), nil)
	return has, errors.Wrap(err, "leveldb has")
}

// Get returns the value stored under key, or db.ErrNotFound.
func (d *Database) Get(key string) (string, error) {
	value, err := d.GetBytes(key)
	return string(value), err
}

// GetBytes returns the raw value stored under key, or db.ErrNotFound.
func (d *Database) GetBytes(key string) ([]byte, error) {
	value, err := d.DB.Get([]byte(key), nil)
	if err == lderrors.ErrNotFound {
		return nil, db.ErrNotFound
	}
	return value, errors.Wrap(err, "leveldb get")
}

// Put stores a value under key.
func (d *Database) Put(key, value string) error {
	return d.PutBytes(key, []byte(value))
}

// PutBytes stores a raw value under key. The value must not be nil.
func (d *Database) PutBytes(key string, value []byte) error {
	if value == nil {
		return errors.New("leveldb: nil value")
	}
	return errors.Wrap(d.DB.Put([]byte(key), value, nil), "leveldb put")
}

// Delete removes the value stored under key.
func (d *Database) Delete(key string) error {
	return errors.Wrap(d.DB.Delete([]byte(key), nil), "leveldb delete")
}

// NewBatch creates a new batch writing into this database.
func (d *Database) NewBatch() db.Batch {
	return &Batch{db: d.DB, batch: new(leveldb.Batch)}
}

// Batch implements db.Batch on top of a LevelDB write batch.
type Batch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

var _ db.Batch = (*Batch)(nil)

// Put buffers a put operation.
func (b *Batch) Put(key, value string) error {
	b.batch.Put([]byte(key), []byte(value))
	return nil
}

// PutBytes buffers a put operation. The value must not be nil.
func (b *Batch) PutBytes(key string, value []byte) error {
	if value == nil {
		return errors.New("leveldb: nil value")
	}
	b.batch.Put([]byte(key), value)
	return nil
}

// Delete buffers a delete operation.
func (b *Batch) Delete(key string) error {
	b.batch.Delete([]byte(key))
	return nil
}

// Apply atomically writes all buffered operations to the database.
func (b *Batch) Apply() error {
	if b.db == nil {
		return errors.New("leveldb: batch without database")
	}
	return errors.Wrap(b.db.Write(b.batch, nil), "leveldb batch write")
}

// Reset discards all buffered operations.
func (b *Batch) Reset() { b.batch.Reset() }

// Len returns the number of buffered operations.
func (b *Batch) Len() uint { return uint(b.batch.Len()) }
