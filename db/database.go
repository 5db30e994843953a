// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package db defines a simple key-value database abstraction used by
// go-satlink to persist session state. Keys and values can be accessed both
// as strings and as raw bytes.
package db // import "satlink.network/go-satlink/db"

import "github.com/pkg/errors"

// ErrNotFound is returned when a requested key is not present in a database.
var ErrNotFound = errors.New("db: key not found")

// Reader is the read half of a database.
type Reader interface {
	// Has reports whether a key is present.
	Has(key string) (bool, error)

	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) (string, error)

	// GetBytes returns the raw value stored under key, or ErrNotFound.
	GetBytes(key string) ([]byte, error)
}

// Writer is the write half of a database.
type Writer interface {
	// Put stores a value under key, overwriting any previous value.
	Put(key, value string) error

	// PutBytes stores a raw value under key. The value must not be nil.
	PutBytes(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a non-existing key
	// is a no-op.
	Delete(key string) error
}

// Batch is a write-only buffer of operations that is applied atomically via
// Apply. A batch must not be used concurrently.
type Batch interface {
	Writer

	// Apply atomically writes all buffered operations to the database.
	Apply() error

	// Reset discards all buffered operations.
	Reset()

	// Len returns the number of buffered operations.
	Len() uint
}

// Batcher wraps the NewBatch method.
type Batcher interface {
	NewBatch() Batch
}

// Database is a key-value database.
type Database interface {
	Reader
	Writer
	Batcher
}
