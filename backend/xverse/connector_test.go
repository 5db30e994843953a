// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package xverse

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"satlink.network/go-satlink/wallet"
)

var _ wallet.Provider = (*mockProvider)(nil)

type mockProvider struct {
	addrs []wallet.AddressInfo
	err   error
}

func (p *mockProvider) GetAddresses(context.Context, wallet.AddressRequest) ([]wallet.AddressInfo, error) {
	return p.addrs, p.err
}

func (p *mockProvider) SignMessage(context.Context, wallet.SignRequest) (string, error) {
	return "", errors.New("not implemented")
}

var (
	paymentEntry = wallet.AddressInfo{Address: "3abc", PublicKey: "ppk", Format: wallet.FormatP2SH}
	ordinalEntry = wallet.AddressInfo{Address: "bc1p", PublicKey: "opk", Format: wallet.FormatP2TR}
)

func TestConnect(t *testing.T) {
	t.Parallel()

	p := &mockProvider{addrs: []wallet.AddressInfo{paymentEntry, ordinalEntry}}
	id, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	require.NoError(t, err)
	assert.True(t, id.Complete())
	assert.Equal(t, "3abc", id.PaymentAddress)
	assert.Equal(t, "bc1p", id.OrdinalAddress)
	assert.Equal(t, wallet.FormatP2TR, id.OrdinalFormat)
}

func TestConnect_MissingOrdinal(t *testing.T) {
	t.Parallel()

	p := &mockProvider{addrs: []wallet.AddressInfo{paymentEntry}}
	id, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	assert.True(t, wallet.IsCode(err, wallet.CodeIncompleteAddressSet))
	assert.True(t, id.Empty(), "no partial identity on failure")
}

func TestConnect_MissingPayment(t *testing.T) {
	t.Parallel()

	p := &mockProvider{addrs: []wallet.AddressInfo{ordinalEntry}}
	id, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	assert.True(t, wallet.IsCode(err, wallet.CodeIncompleteAddressSet))
	assert.True(t, id.Empty())
}

func TestConnect_IncompleteEntriesIgnored(t *testing.T) {
	t.Parallel()

	// An entry without a public key must not fill a role.
	broken := wallet.AddressInfo{Address: "bc1p", Format: wallet.FormatP2TR}
	p := &mockProvider{addrs: []wallet.AddressInfo{paymentEntry, broken}}
	_, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	assert.True(t, wallet.IsCode(err, wallet.CodeIncompleteAddressSet))
}

func TestConnect_EmptyResponse(t *testing.T) {
	t.Parallel()

	p := &mockProvider{}
	_, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	assert.True(t, wallet.IsCode(err, wallet.CodeEmptyResponse))
}

func TestConnect_ProviderError(t *testing.T) {
	t.Parallel()

	p := &mockProvider{err: errors.New("extension exploded")}
	_, err := Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	require.Error(t, err)
	assert.Equal(t, wallet.CodeUnknown, wallet.CodeOf(err))
	assert.EqualError(t, err, "extension exploded")

	p.err = wallet.NewError(wallet.CodeUserCancelled, "user rejected the request")
	_, err = Connector{}.Connect(context.Background(), p, wallet.NetworkMainnet, false)
	assert.True(t, wallet.IsCode(err, wallet.CodeUserCancelled), "typed provider errors must pass through")
}

func TestConnect_InvalidNetwork(t *testing.T) {
	t.Parallel()

	p := &mockProvider{addrs: []wallet.AddressInfo{paymentEntry, ordinalEntry}}
	_, err := Connector{}.Connect(context.Background(), p, wallet.Network("signet"), false)
	require.Error(t, err)
}
