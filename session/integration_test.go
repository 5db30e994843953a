// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satlink.network/go-satlink/backend/sim"
	"satlink.network/go-satlink/backend/xverse"
	"satlink.network/go-satlink/db/memorydb"
	"satlink.network/go-satlink/session"
	"satlink.network/go-satlink/wallet"
)

const simMnemonic = "abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon about"

// TestSessionLifecycle drives the full connect, sign, account switch,
// reconnect and disconnect cycle against the simulated wallet extension.
func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	provider, err := sim.NewProvider(simMnemonic, wallet.NetworkMainnet, 2)
	require.NoError(t, err)
	locator := wallet.MapLocator{wallet.KindXverse: provider}
	database := memorydb.NewDatabase()

	store, err := session.NewStore(database)
	require.NoError(t, err)
	manager, err := session.NewManager(session.Config{
		Store:      store,
		Locator:    locator,
		Connectors: []wallet.Connector{xverse.Connector{}},
	})
	require.NoError(t, err)

	events := make(chan session.Event, 16)
	sub := manager.Subscribe(events)
	defer sub.Unsubscribe()
	waitEvent := func(want session.EventType) {
		t.Helper()
		select {
		case ev := <-events:
			require.Equal(t, want, ev.Type, "unexpected event type (err: %v)", ev.Err)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for session event")
		}
	}

	ctx := context.Background()
	require.NoError(t, manager.Connect(ctx, wallet.KindXverse, wallet.NetworkMainnet))
	waitEvent(session.EventConnected)

	id := store.Identity()
	require.True(t, id.Complete())
	assert.Equal(t, 1, provider.Listeners())

	signer := session.NewSigner(store, locator)
	sig, err := signer.Sign(ctx, id.PaymentAddress, "hello satlink")
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	// Switching accounts in the extension re-runs the connect flow with a
	// fresh identity.
	provider.SwitchAccount()
	waitEvent(session.EventConnected)
	assert.NotEqual(t, id, store.Identity())
	assert.True(t, store.Identity().Complete())
	assert.Equal(t, 1, provider.Listeners())

	// A fresh manager over the same database restores the session silently,
	// even while the extension denies interactive prompts.
	provider.Deny()
	store2, err := session.NewStore(database)
	require.NoError(t, err)
	manager2, err := session.NewManager(session.Config{
		Store:      store2,
		Locator:    locator,
		Connectors: []wallet.Connector{xverse.Connector{}},
	})
	require.NoError(t, err)
	require.NoError(t, manager2.ReconnectOnLoad(ctx))
	assert.True(t, store2.Connected())
	assert.Equal(t, store.Identity(), store2.Identity())

	require.NoError(t, manager2.Disconnect())
	assert.False(t, store2.Connected())
	s3, err := session.NewStore(database)
	require.NoError(t, err)
	assert.False(t, s3.Connected(), "disconnect must remove the persisted record")
}
