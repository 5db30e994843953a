// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

import "context"

// AddressRequest parameterizes a provider address retrieval. With ReadOnly
// set, the provider must not prompt the user for a signing permission; this
// is used for silent reconnection.
type AddressRequest struct {
	Network  Network
	ReadOnly bool
}

// SignRequest parameterizes a provider message signature.
type SignRequest struct {
	Network Network
	Address string
	Message string
}

// Provider is the primitive API surface a wallet extension injects. The core
// depends only on this shape, not on any particular extension's wire
// protocol. Providers are treated as external collaborators; connectors
// normalize their responses.
type Provider interface {
	// GetAddresses returns the extension's address list for the network.
	GetAddresses(ctx context.Context, req AddressRequest) ([]AddressInfo, error)

	// SignMessage signs a message with the key behind the given address and
	// returns the encoded signature.
	SignMessage(ctx context.Context, req SignRequest) (string, error)
}

// ListenerHandle is an opaque registration token for a provider's
// account-change notification. Handles are only meaningful to the provider
// that issued them.
type ListenerHandle uint64

// AccountNotifier is implemented by providers that emit account-change
// events. At most one listener per connected wallet instance may be active;
// registering a fresh listener requires deregistering the prior handle first.
type AccountNotifier interface {
	// AddAccountListener registers a callback invoked when the user switches
	// accounts inside the wallet.
	AddAccountListener(onChange func()) (ListenerHandle, error)

	// RemoveAccountListener deregisters a previously issued handle. Removing
	// an unknown handle is an error.
	RemoveAccountListener(h ListenerHandle) error
}

// Locator resolves the injected provider for a wallet kind. A kind without a
// provider means the extension is not (yet) available; the session
// orchestrator polls the locator during its readiness wait.
type Locator interface {
	Provider(Kind) (Provider, bool)
}

// MapLocator is a static Locator for embedders and tests.
type MapLocator map[Kind]Provider

// Provider returns the provider registered for the kind.
func (l MapLocator) Provider(k Kind) (Provider, bool) {
	p, ok := l[k]
	return p, ok
}
