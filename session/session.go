// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package session

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"

	"satlink.network/go-satlink/log"
	pkgsync "satlink.network/go-satlink/pkg/sync"
	"satlink.network/go-satlink/wallet"
)

// Default bounds of the extension readiness wait on the silent reconnect
// path.
const (
	defaultReadyTimeout = 3 * time.Second
	defaultReadyPoll    = 50 * time.Millisecond
)

// Config parameterizes a session Manager.
type Config struct {
	// Store is the identity store. Required.
	Store *Store

	// Locator resolves injected wallet providers. Required.
	Locator wallet.Locator

	// Connectors are the wallet adapters, one per supported kind. Required.
	Connectors []wallet.Connector

	// ReadyTimeout bounds the extension readiness wait of ReconnectOnLoad.
	// Defaults to 3s.
	ReadyTimeout time.Duration

	// ReadyPoll is the locator polling interval during the readiness wait.
	// Defaults to 50ms.
	ReadyPoll time.Duration
}

// Manager drives the connect / reconnect / disconnect state machine. It owns
// the account-change listener lifecycle and is the only writer of the
// identity store.
//
// All connect flows of a Manager are serialized: a connect attempt completes
// (success or failure) before the next one, including the reconnects
// triggered by account-change notifications, may start.
type Manager struct {
	mutex      pkgsync.Mutex // Serializes connect/disconnect flows.
	store      *Store
	locator    wallet.Locator
	connectors map[wallet.Kind]wallet.Connector

	// listeners holds the single active account-change handle per wallet
	// kind. Guarded by mutex.
	listeners map[wallet.Kind]wallet.ListenerHandle

	feed event.Feed

	readyTimeout time.Duration
	readyPoll    time.Duration
}

// NewManager creates a session manager from the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Store == nil {
		return nil, errors.New("nil store")
	}
	if cfg.Locator == nil {
		return nil, errors.New("nil locator")
	}
	if len(cfg.Connectors) == 0 {
		return nil, errors.New("no connectors")
	}

	connectors := make(map[wallet.Kind]wallet.Connector, len(cfg.Connectors))
	for _, c := range cfg.Connectors {
		if _, ok := connectors[c.Kind()]; ok {
			return nil, errors.Errorf("duplicate connector for kind %q", c.Kind())
		}
		connectors[c.Kind()] = c
	}

	m := &Manager{
		store:        cfg.Store,
		locator:      cfg.Locator,
		connectors:   connectors,
		listeners:    make(map[wallet.Kind]wallet.ListenerHandle),
		readyTimeout: cfg.ReadyTimeout,
		readyPoll:    cfg.ReadyPoll,
	}
	if m.readyTimeout <= 0 {
		m.readyTimeout = defaultReadyTimeout
	}
	if m.readyPoll <= 0 {
		m.readyPoll = defaultReadyPoll
	}
	return m, nil
}

// Store returns the identity store for read access.
func (m *Manager) Store() *Store { return m.store }

// Subscribe registers a channel for session events. Event delivery blocks on
// slow subscribers.
func (m *Manager) Subscribe(ch chan<- Event) event.Subscription {
	return m.feed.Subscribe(ch)
}

// Connect establishes a session with the given wallet kind. On success the
// identity store holds the normalized identity and an account-change listener
// is armed. On failure the store is cleared, a user-facing error message is
// recorded and the typed error is returned.
func (m *Manager) Connect(ctx context.Context, kind wallet.Kind, network wallet.Network) error {
	if !m.mutex.TryLockCtx(ctx) {
		return errors.Wrap(ctx.Err(), "waiting for in-flight session operation")
	}
	defer m.mutex.Unlock()

	return m.connect(ctx, kind, network, false, false)
}

// connect runs one full connect flow. The caller must hold the mutex. With
// silent set, failures do not record a user-facing error message.
func (m *Manager) connect(ctx context.Context, kind wallet.Kind, network wallet.Network, readOnly, silent bool) error {
	m.store.ClearError()

	// Listeners of any previous session must go first, so that repeated
	// connects never accumulate duplicate callbacks and no stale kind keeps
	// notifying after the session moved to another wallet.
	m.dropListeners()

	connector, ok := m.connectors[kind]
	if !ok {
		return m.connectFailed(kind, silent,
			wallet.NewErrorf(wallet.CodeUnknown, "unsupported wallet kind %q", kind))
	}
	provider, ok := m.locator.Provider(kind)
	if !ok {
		return m.connectFailed(kind, silent,
			wallet.NewErrorf(wallet.CodeNotInstalled, "no provider for wallet kind %q", kind))
	}

	identity, err := connector.Connect(ctx, provider, network, readOnly)
	if err != nil {
		return m.connectFailed(kind, silent, err)
	}
	if err := m.store.SetConnected(kind, network, identity); err != nil {
		return m.connectFailed(kind, silent, wallet.Wrap(err))
	}

	m.armListener(kind, network, provider)
	log.WithFields(log.Fields{"wallet": kind, "network": network}).Infof("wallet connected")
	m.feed.Send(Event{Type: EventConnected, Kind: kind})
	return nil
}

// connectFailed resolves a failed connect attempt to the disconnected state.
// It never leaves a half-populated identity behind.
func (m *Manager) connectFailed(kind wallet.Kind, silent bool, err error) error {
	if cerr := m.store.Clear(); cerr != nil {
		log.WithError(cerr).Errorf("clearing session state after failed connect")
	}

	logger := log.WithField("wallet", kind).WithError(err)
	if silent {
		logger.Debugf("silent reconnect failed")
	} else {
		m.store.SetError(wallet.CodeOf(err).Message())
		logger.Warnf("wallet connect failed")
	}

	m.feed.Send(Event{Type: EventDisconnected, Kind: kind, Err: err})
	return err
}

// armListener registers a fresh account-change listener for providers that
// support the notification. The callback re-runs the full connect flow,
// serialized behind any in-flight session operation.
func (m *Manager) armListener(kind wallet.Kind, network wallet.Network, provider wallet.Provider) {
	notifier, ok := provider.(wallet.AccountNotifier)
	if !ok {
		return
	}

	handle, err := notifier.AddAccountListener(func() {
		go m.onAccountChange(kind, network)
	})
	if err != nil {
		log.WithField("wallet", kind).WithError(err).Warnf("registering account listener")
		return
	}
	m.listeners[kind] = handle
}

// onAccountChange re-runs the connect flow after the user switched accounts
// inside the wallet.
func (m *Manager) onAccountChange(kind wallet.Kind, network wallet.Network) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	log.WithField("wallet", kind).Debugf("account change notification")
	_ = m.connect(context.Background(), kind, network, false, false)
}

// dropListeners deregisters every active listener. The caller must hold the
// mutex. At most one session exists at a time, so every registered handle
// belongs to a session that is being replaced or torn down.
func (m *Manager) dropListeners() {
	for kind := range m.listeners {
		m.dropListener(kind)
	}
}

// dropListener deregisters the active listener of the given kind, if any.
// The caller must hold the mutex. A kind without a registered listener is a
// no-op, which makes first connects and repeated disconnects tolerant.
func (m *Manager) dropListener(kind wallet.Kind) {
	handle, ok := m.listeners[kind]
	if !ok {
		return
	}
	delete(m.listeners, kind)

	provider, ok := m.locator.Provider(kind)
	if !ok {
		return
	}
	notifier, ok := provider.(wallet.AccountNotifier)
	if !ok {
		return
	}
	if err := notifier.RemoveAccountListener(handle); err != nil {
		log.WithField("wallet", kind).WithError(err).Debugf("removing account listener")
	}
}

// Disconnect tears down the active session: it deregisters the
// account-change listener and clears the identity store. Disconnecting
// without an active session is a no-op.
func (m *Manager) Disconnect() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	kind := m.store.Kind()
	wasConnected := m.store.Connected()
	m.dropListeners()
	m.store.ClearError()
	if err := m.store.Clear(); err != nil {
		return err
	}

	if wasConnected {
		log.WithField("wallet", kind).Infof("wallet disconnected")
		m.feed.Send(Event{Type: EventDisconnected, Kind: kind})
	}
	return nil
}

// ReconnectOnLoad silently re-establishes a previously persisted session. It
// waits for the wallet extension to become ready, bounded by the configured
// timeout, and then connects read-only, so the user is never prompted.
// Failures degrade to the disconnected state without recording a user-facing
// error; the returned error is non-nil only if the context is cancelled.
func (m *Manager) ReconnectOnLoad(ctx context.Context) error {
	if !m.mutex.TryLockCtx(ctx) {
		return errors.Wrap(ctx.Err(), "waiting for in-flight session operation")
	}
	defer m.mutex.Unlock()

	kind := m.store.Kind()
	if kind == "" || !m.store.Connected() {
		return nil
	}
	network := m.store.Network()

	if !m.waitReady(ctx, kind) {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "waiting for wallet extension")
		}
		err := wallet.NewErrorf(wallet.CodeExtensionNotReady,
			"wallet extension %q not ready within %v", kind, m.readyTimeout)
		_ = m.connectFailed(kind, true, err)
		return nil
	}

	_ = m.connect(ctx, kind, network, true, true)
	return nil
}

// waitReady polls the locator until a provider for the kind is available,
// the timeout elapses or the context is cancelled.
func (m *Manager) waitReady(ctx context.Context, kind wallet.Kind) bool {
	if _, ok := m.locator.Provider(kind); ok {
		return true
	}

	deadline := time.NewTimer(m.readyTimeout)
	defer deadline.Stop()
	poll := time.NewTicker(m.readyPoll)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-poll.C:
			if _, ok := m.locator.Provider(kind); ok {
				return true
			}
		}
	}
}
