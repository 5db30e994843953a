// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package xverse implements the connector for dual-address wallets in the
// style of the Xverse extension: the address list must contain exactly one
// usable entry for the payment role and one for the ordinal role.
package xverse // import "satlink.network/go-satlink/backend/xverse"

import (
	"context"

	"satlink.network/go-satlink/log"
	"satlink.network/go-satlink/wallet"
)

// Connector is the dual-address wallet connector. It is stateless.
type Connector struct{}

var _ wallet.Connector = Connector{}

// Kind returns wallet.KindXverse.
func (Connector) Kind() wallet.Kind { return wallet.KindXverse }

// Connect retrieves the provider's address list and normalizes it into an
// identity with distinct payment and ordinal entries. If either role cannot
// be filled, it fails with CodeIncompleteAddressSet and no partial identity.
func (c Connector) Connect(ctx context.Context, p wallet.Provider, network wallet.Network, readOnly bool) (wallet.Identity, error) {
	if !network.Valid() {
		return wallet.Identity{}, wallet.NewErrorf(wallet.CodeUnknown, "unsupported network %q", network)
	}

	addrs, err := p.GetAddresses(ctx, wallet.AddressRequest{Network: network, ReadOnly: readOnly})
	if err != nil {
		return wallet.Identity{}, wallet.Wrap(err)
	}
	if len(addrs) == 0 {
		return wallet.Identity{}, wallet.NewError(wallet.CodeEmptyResponse, "wallet returned zero addresses")
	}

	payment, ok := pick(addrs, wallet.AddressFormat.Payment)
	if !ok {
		return wallet.Identity{}, wallet.NewError(wallet.CodeIncompleteAddressSet, "no payment address in response")
	}
	ordinal, ok := pick(addrs, wallet.AddressFormat.Ordinal)
	if !ok {
		return wallet.Identity{}, wallet.NewError(wallet.CodeIncompleteAddressSet, "no ordinal address in response")
	}

	log.WithFields(log.Fields{"wallet": c.Kind(), "network": network}).
		Debugf("normalized dual-address response")
	return wallet.DualIdentity(payment, ordinal), nil
}

// pick returns the first complete entry whose format satisfies the role
// predicate.
func pick(addrs []wallet.AddressInfo, role func(wallet.AddressFormat) bool) (wallet.AddressInfo, bool) {
	for _, a := range addrs {
		if a.Complete() && role(a.Format) {
			return a, true
		}
	}
	return wallet.AddressInfo{}, false
}
