// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package session implements the wallet session orchestration core: the
// identity store, the connect/disconnect/reconnect state machine and the
// message signing service.
package session // import "satlink.network/go-satlink/session"

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"satlink.network/go-satlink/db"
	"satlink.network/go-satlink/log"
	"satlink.network/go-satlink/wallet"
)

// StateNamespace is the fixed key prefix under which session state is
// persisted.
const StateNamespace = "session:"

// Persisted state keys within StateNamespace.
const (
	keyWallet   = "wallet"
	keyNetwork  = "network"
	keyIdentity = "identity"
)

// Store holds the current session state: the connected wallet kind, its
// network and the normalized identity, plus the last user-facing error
// message. The (kind, network, identity) triple is persisted so that the
// session can be silently reconnected after a reload.
//
// Only the session Manager writes the store; consumers use the read
// accessors. The store enforces the all-or-nothing identity invariant at the
// write boundary.
type Store struct {
	mutex    sync.RWMutex
	db       db.Database
	kind     wallet.Kind
	network  wallet.Network
	identity wallet.Identity
	lastErr  string
}

// NewStore creates a session store on top of the given database and hydrates
// it from previously persisted state. A missing, partial or corrupt record
// hydrates as disconnected.
func NewStore(database db.Database) (*Store, error) {
	if database == nil {
		return nil, errors.New("nil database")
	}
	s := &Store{db: db.NewTable(database, StateNamespace)}
	if err := s.hydrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// hydrate loads the persisted (kind, network, identity) triple. Anything
// that does not amount to a complete record is discarded.
func (s *Store) hydrate() error {
	kind, err := s.db.Get(keyWallet)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	} else if err != nil {
		return errors.WithMessage(err, "reading persisted wallet kind")
	}

	network, err := s.db.Get(keyNetwork)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return errors.WithMessage(err, "reading persisted network")
	}

	raw, err := s.db.GetBytes(keyIdentity)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return errors.WithMessage(err, "reading persisted identity")
	}

	var identity wallet.Identity
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &identity); err != nil {
			log.WithError(err).Warnf("discarding corrupt persisted identity")
			return s.purge()
		}
	}

	if kind == "" || !wallet.Network(network).Valid() || !identity.Complete() {
		log.Warnf("discarding incomplete persisted session record")
		return s.purge()
	}

	s.kind = wallet.Kind(kind)
	s.network = wallet.Network(network)
	s.identity = identity
	return nil
}

// purge removes a rejected persisted record, so that later loads start from
// the fully empty state.
func (s *Store) purge() error {
	batch := s.db.NewBatch()
	_ = batch.Delete(keyWallet)
	_ = batch.Delete(keyNetwork)
	_ = batch.Delete(keyIdentity)
	return errors.WithMessage(batch.Apply(), "purging invalid session record")
}

// SetConnected replaces the session state wholesale with a connected wallet
// and persists it. The identity must be complete; a partial identity is a
// programming error and is rejected.
func (s *Store) SetConnected(kind wallet.Kind, network wallet.Network, identity wallet.Identity) error {
	if kind == "" {
		return errors.New("empty wallet kind")
	}
	if !network.Valid() {
		return errors.Errorf("invalid network %q", network)
	}
	if !identity.Complete() {
		return errors.New("refusing to store a partial identity")
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "encoding identity")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	batch := s.db.NewBatch()
	_ = batch.Put(keyWallet, string(kind))
	_ = batch.Put(keyNetwork, string(network))
	_ = batch.PutBytes(keyIdentity, raw)
	if err := batch.Apply(); err != nil {
		return errors.WithMessage(err, "persisting session state")
	}

	s.kind = kind
	s.network = network
	s.identity = identity
	return nil
}

// Clear resets the store to the disconnected state and removes the persisted
// record. Clearing an already empty store is a no-op.
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.kind = ""
	s.network = ""
	s.identity = wallet.Identity{}

	batch := s.db.NewBatch()
	_ = batch.Delete(keyWallet)
	_ = batch.Delete(keyNetwork)
	_ = batch.Delete(keyIdentity)
	return errors.WithMessage(batch.Apply(), "clearing persisted session state")
}

// SetError records a user-facing error message. It is not persisted.
func (s *Store) SetError(msg string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastErr = msg
}

// ClearError clears the user-facing error message.
func (s *Store) ClearError() { s.SetError("") }

// Kind returns the connected wallet kind, or "" when disconnected.
func (s *Store) Kind() wallet.Kind {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.kind
}

// Network returns the connected network, or "" when disconnected.
func (s *Store) Network() wallet.Network {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.network
}

// Identity returns the current identity. It is either complete or fully
// empty.
func (s *Store) Identity() wallet.Identity {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity
}

// LastError returns the user-facing message of the last failed interactive
// action, or "".
func (s *Store) LastError() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastErr
}

// Connected reports whether a complete identity is present.
func (s *Store) Connected() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.identity.Complete()
}
