// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package memorydb

import (
	"github.com/pkg/errors"

	"satlink.network/go-satlink/db"
)

// Batch implements db.Batch for the in-memory database.
type Batch struct {
	db  *Database
	ops []op
}

var _ db.Batch = (*Batch)(nil)

type op struct {
	key    string
	value  string
	delete bool
}

// Put buffers a put operation.
func (b *Batch) Put(key, value string) error {
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

// PutBytes buffers a put operation. The value must not be nil.
func (b *Batch) PutBytes(key string, value []byte) error {
	if value == nil {
		return errors.New("memorydb: nil value")
	}
	return b.Put(key, string(value))
}

// Delete buffers a delete operation.
func (b *Batch) Delete(key string) error {
	b.ops = append(b.ops, op{key: key, delete: true})
	return nil
}

// Apply atomically writes all buffered operations to the database.
func (b *Batch) Apply() error {
	if b.db == nil {
		return errors.New("memorydb: batch without database")
	}
	b.db.mutex.Lock()
	defer b.db.mutex.Unlock()
	for _, o := range b.ops {
		if o.delete {
			delete(b.db.data, o.key)
		} else {
			b.db.data[o.key] = o.value
		}
	}
	return nil
}

// Reset discards all buffered operations.
func (b *Batch) Reset() { b.ops = nil }

// Len returns the number of buffered operations.
func (b *Batch) Len() uint { return uint(len(b.ops)) }
