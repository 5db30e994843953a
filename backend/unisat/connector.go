// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package unisat implements the connector for single-address wallets in the
// style of the Unisat extension: the first returned address serves both the
// payment and the ordinal role.
package unisat // import "satlink.network/go-satlink/backend/unisat"

import (
	"context"

	"satlink.network/go-satlink/log"
	"satlink.network/go-satlink/wallet"
)

// Connector is the single-address wallet connector. It is stateless.
type Connector struct{}

var _ wallet.Connector = Connector{}

// Kind returns wallet.KindUnisat.
func (Connector) Kind() wallet.Kind { return wallet.KindUnisat }

// Connect retrieves the provider's address list and replicates the first
// returned address into both identity roles.
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

	first := addrs[0]
	if !first.Complete() {
		return wallet.Identity{}, wallet.NewError(wallet.CodeIncompleteAddressSet, "first address entry is missing fields")
	}

	log.WithFields(log.Fields{"wallet": c.Kind(), "network": network}).
		Debugf("normalized single-address response")
	return wallet.SingleIdentity(first), nil
}
