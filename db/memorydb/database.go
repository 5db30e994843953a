// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package memorydb provides an in-memory implementation of the db.Database
// interface. It is used for testing and for embedders that do not need
// session state to survive a restart.
package memorydb // import "satlink.network/go-satlink/db/memorydb"

import (
	"sync"

	"github.com/pkg/errors"

	"satlink.network/go-satlink/db"
)

// Database implements db.Database backed by a map. It is safe for concurrent
// use.
type Database struct {
	mutex sync.RWMutex
	data  map[string]string
}

var _ db.Database = (*Database)(nil)

// NewDatabase creates a new, empty in-memory database.
func NewDatabase() *Database {
	return &Database{data: make(map[string]string)}
}

// FromData creates an in-memory database populated with the given data. The
// map is copied.
func FromData(data map[string]string) *Database {
	d := NewDatabase()
	for k, v := range data {
		d.data[k] = v
	}
	return d
}

// Has reports whether a key is present.
func (d *Database) Has(key string) (bool, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	_, ok := d.data[key]
	return ok, nil
}

// Get returns the value stored under key, or db.ErrNotFound.
func (d *Database) Get(key string) (string, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	value, ok := d.data[key]
	if !ok {
		return "", db.ErrNotFound
	}
	return value, nil
}

// GetBytes returns the raw value stored under key, or db.ErrNotFound.
func (d *Database) GetBytes(key string) ([]byte, error) {
	value, err := d.Get(key)
	return []byte(value), err
}

// Put stores a value under key.
func (d *Database) Put(key, value string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.data[key] = value
	return nil
}

// PutBytes stores a raw value under key. The value must not be nil.
func (d *Database) PutBytes(key string, value []byte) error {
	if value == nil {
		return errors.New("memorydb: nil value")
	}
	return d.Put(key, string(value))
}

// Delete removes the value stored under key.
func (d *Database) Delete(key string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	delete(d.data, key)
	return nil
}

// NewBatch creates a new batch writing into this database.
func (d *Database) NewBatch() db.Batch {
	return &Batch{db: d}
}
