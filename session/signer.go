// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package session

import (
	"context"

	"github.com/pkg/errors"

	"satlink.network/go-satlink/pkg/sync/atomic"
	"satlink.network/go-satlink/wallet"
)

// Signer signs arbitrary messages with the connected identity. It delegates
// to the connected wallet's provider and never mutates the identity store: a
// signing failure does not invalidate an established session.
type Signer struct {
	store   *Store
	locator wallet.Locator
	busy    atomic.Bool
}

// NewSigner creates a message signing service over the given store and
// locator.
func NewSigner(store *Store, locator wallet.Locator) *Signer {
	return &Signer{store: store, locator: locator}
}

// Busy reports whether a signature request is outstanding. It is advisory: a
// UI uses it to disable duplicate submissions, but concurrent Sign calls are
// not rejected.
func (s *Signer) Busy() bool { return s.busy.IsSet() }

// Sign signs the message with the key behind the given address. Without a
// connected identity it fails with CodeNoWalletConnected before any provider
// call. Provider errors are returned wrapped with their original message
// preserved.
func (s *Signer) Sign(ctx context.Context, address, message string) (string, error) {
	if !s.store.Connected() {
		return "", wallet.NewError(wallet.CodeNoWalletConnected, "no wallet connected")
	}

	kind := s.store.Kind()
	provider, ok := s.locator.Provider(kind)
	if !ok {
		return "", wallet.NewErrorf(wallet.CodeNotInstalled, "no provider for wallet kind %q", kind)
	}

	s.busy.Set()
	defer s.busy.Unset()

	signature, err := provider.SignMessage(ctx, wallet.SignRequest{
		Network: s.store.Network(),
		Address: address,
		Message: message,
	})
	if err != nil {
		return "", errors.WithMessage(wallet.Wrap(err), "signing message")
	}
	return signature, nil
}
