// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package test provides generic tests for implementations of the db.Database
// interface.
package test // import "satlink.network/go-satlink/db/test"

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satlink.network/go-satlink/db"
)

// GenericDatabaseTest runs a conformance test against the given empty
// database.
func GenericDatabaseTest(t *testing.T, d db.Database) {
	t.Helper()

	has, err := d.Has("key")
	require.NoError(t, err)
	assert.False(t, has, "empty database must not contain keys")

	_, err = d.Get("key")
	assert.ErrorIs(t, err, db.ErrNotFound, "Get of missing key must return ErrNotFound")

	require.NoError(t, d.Put("key", "value"))
	has, err = d.Has("key")
	require.NoError(t, err)
	assert.True(t, has)

	value, err := d.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	require.NoError(t, d.PutBytes("key", []byte("raw")))
	raw, err := d.GetBytes("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), raw)

	err = d.PutBytes("key", nil)
	require.Error(t, err, "PutBytes with nil value must fail")
	assert.Contains(t, err.Error(), "value")

	require.NoError(t, d.Delete("key"))
	_, err = d.Get("key")
	assert.ErrorIs(t, err, db.ErrNotFound)

	assert.NoError(t, d.Delete("key"), "deleting a missing key must be a no-op")
}

// GenericBatchTest runs a conformance test against batches of the given empty
// database.
func GenericBatchTest(t *testing.T, d db.Database) {
	t.Helper()

	batch := d.NewBatch()
	assert.Zero(t, batch.Len(), "new batch must be empty")

	require.NoError(t, batch.Put("a", "1"))
	require.NoError(t, batch.PutBytes("b", []byte("2")))
	assert.EqualValues(t, 2, batch.Len())

	has, err := d.Has("a")
	require.NoError(t, err)
	assert.False(t, has, "batched writes must not be visible before Apply")

	require.NoError(t, batch.Apply())
	for key, want := range map[string]string{"a": "1", "b": "2"} {
		value, err := d.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}

	batch.Reset()
	assert.Zero(t, batch.Len(), "Reset must discard buffered operations")

	require.NoError(t, batch.Delete("a"))
	require.NoError(t, batch.Apply())
	_, err = d.Get("a")
	assert.ErrorIs(t, err, db.ErrNotFound)

	err = batch.PutBytes("c", nil)
	require.Error(t, err, "PutBytes with nil value must fail")
	assert.Contains(t, err.Error(), "value")
}
