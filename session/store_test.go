// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satlink.network/go-satlink/db"
	"satlink.network/go-satlink/db/memorydb"
	"satlink.network/go-satlink/session"
	"satlink.network/go-satlink/wallet"
)

var testIdentity = wallet.DualIdentity(
	wallet.AddressInfo{Address: "3abc", PublicKey: "ppk", Format: wallet.FormatP2SH},
	wallet.AddressInfo{Address: "bc1p", PublicKey: "opk", Format: wallet.FormatP2TR},
)

func TestNewStore_NilArgs(t *testing.T) {
	t.Parallel()

	_, err := session.NewStore(nil)
	assert.Error(t, err)
}

func TestStore_EmptyDatabase(t *testing.T) {
	t.Parallel()

	s, err := session.NewStore(memorydb.NewDatabase())
	require.NoError(t, err)
	assert.False(t, s.Connected())
	assert.Empty(t, s.Kind())
	assert.Empty(t, s.Network())
	assert.True(t, s.Identity().Empty())
	assert.Empty(t, s.LastError())
}

func TestStore_PersistAndHydrate(t *testing.T) {
	t.Parallel()

	database := memorydb.NewDatabase()
	s, err := session.NewStore(database)
	require.NoError(t, err)
	require.NoError(t, s.SetConnected(wallet.KindXverse, wallet.NetworkMainnet, testIdentity))

	// A fresh store over the same database sees the same session.
	s2, err := session.NewStore(database)
	require.NoError(t, err)
	assert.Equal(t, wallet.KindXverse, s2.Kind())
	assert.Equal(t, wallet.NetworkMainnet, s2.Network())
	assert.Equal(t, testIdentity, s2.Identity())
	assert.True(t, s2.Connected())
}

func TestStore_RejectsPartialIdentity(t *testing.T) {
	t.Parallel()

	s, err := session.NewStore(memorydb.NewDatabase())
	require.NoError(t, err)

	partial := testIdentity
	partial.OrdinalPublicKey = ""
	assert.Error(t, s.SetConnected(wallet.KindXverse, wallet.NetworkMainnet, partial))
	assert.False(t, s.Connected(), "a rejected write must not change the store")

	assert.Error(t, s.SetConnected(wallet.KindXverse, wallet.Network("signet"), testIdentity))
	assert.Error(t, s.SetConnected("", wallet.NetworkMainnet, testIdentity))
}

func TestStore_CorruptIdentityHydratesDisconnected(t *testing.T) {
	t.Parallel()

	database := memorydb.NewDatabase()
	require.NoError(t, database.Put(session.StateNamespace+"wallet", "xverse"))
	require.NoError(t, database.Put(session.StateNamespace+"network", "mainnet"))
	require.NoError(t, database.Put(session.StateNamespace+"identity", "{not json"))

	s, err := session.NewStore(database)
	require.NoError(t, err)
	assert.False(t, s.Connected())

	// The corrupt record is removed, not left behind.
	_, err = database.Get(session.StateNamespace + "identity")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestStore_PartialRecordHydratesDisconnected(t *testing.T) {
	t.Parallel()

	database := memorydb.NewDatabase()
	require.NoError(t, database.Put(session.StateNamespace+"wallet", "xverse"))

	s, err := session.NewStore(database)
	require.NoError(t, err)
	assert.False(t, s.Connected())
	assert.Empty(t, s.Kind())

	// The rejected record is removed, so later loads start fully empty.
	_, err = database.Get(session.StateNamespace + "wallet")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestStore_InvalidNetworkRecordPurged(t *testing.T) {
	t.Parallel()

	database := memorydb.NewDatabase()
	s, err := session.NewStore(database)
	require.NoError(t, err)
	require.NoError(t, s.SetConnected(wallet.KindXverse, wallet.NetworkMainnet, testIdentity))
	require.NoError(t, database.Put(session.StateNamespace+"network", "signet"))

	s2, err := session.NewStore(database)
	require.NoError(t, err)
	assert.False(t, s2.Connected())

	for _, key := range []string{"wallet", "network", "identity"} {
		_, err := database.Get(session.StateNamespace + key)
		assert.ErrorIs(t, err, db.ErrNotFound, "stale key %q must be purged", key)
	}
}

func TestStore_Clear_Idempotent(t *testing.T) {
	t.Parallel()

	database := memorydb.NewDatabase()
	s, err := session.NewStore(database)
	require.NoError(t, err)
	require.NoError(t, s.SetConnected(wallet.KindUnisat, wallet.NetworkTestnet, testIdentity))

	require.NoError(t, s.Clear())
	assert.False(t, s.Connected())
	assert.Empty(t, s.Kind())

	// Clearing twice yields the identical empty state.
	require.NoError(t, s.Clear())
	assert.False(t, s.Connected())
	assert.Empty(t, s.Kind())
	assert.True(t, s.Identity().Empty())

	// The persisted record is gone, too.
	s2, err := session.NewStore(database)
	require.NoError(t, err)
	assert.False(t, s2.Connected())
}

func TestStore_LastError(t *testing.T) {
	t.Parallel()

	s, err := session.NewStore(memorydb.NewDatabase())
	require.NoError(t, err)

	s.SetError("wallet returned no addresses")
	assert.Equal(t, "wallet returned no addresses", s.LastError())
	s.ClearError()
	assert.Empty(t, s.LastError())
}
