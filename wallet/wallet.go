// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package wallet defines an abstraction over browser-extension Bitcoin
// wallets. It normalizes the heterogeneous provider APIs of the supported
// extensions into one identity model that the session package orchestrates.
package wallet // import "satlink.network/go-satlink/wallet"

// Kind identifies a supported wallet extension. New kinds can be added
// without touching the session orchestration.
type Kind string

// The built-in wallet kinds.
const (
	// KindXverse is a dual-address wallet exposing a separate payment and
	// ordinal address.
	KindXverse Kind = "xverse"

	// KindUnisat is a single-address wallet whose one address serves both the
	// payment and the ordinal role.
	KindUnisat Kind = "unisat"
)

// Network is the Bitcoin network a session is connected to.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// Valid reports whether the network is a known value.
func (n Network) Valid() bool {
	return n == NetworkMainnet || n == NetworkTestnet
}
