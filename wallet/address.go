// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

// AddressFormat is the script encoding of an address. It is immutable once
// assigned to an identity.
type AddressFormat string

const (
	// FormatP2PKH is a legacy pay-to-pubkey-hash address.
	FormatP2PKH AddressFormat = "p2pkh"

	// FormatP2SH is a nested segwit (p2sh-p2wpkh) address, used by
	// dual-address wallets for payments.
	FormatP2SH AddressFormat = "p2sh-p2wpkh"

	// FormatP2WPKH is a native segwit address.
	FormatP2WPKH AddressFormat = "p2wpkh"

	// FormatP2TR is a taproot address, used for ordinal-bearing outputs.
	FormatP2TR AddressFormat = "p2tr"
)

// Payment reports whether the format is acceptable for the payment role.
func (f AddressFormat) Payment() bool {
	return f == FormatP2PKH || f == FormatP2SH || f == FormatP2WPKH
}

// Ordinal reports whether the format is acceptable for the ordinal role.
func (f AddressFormat) Ordinal() bool {
	return f == FormatP2TR
}

// AddressInfo is one entry of a wallet extension's raw address list, before
// normalization into an Identity.
type AddressInfo struct {
	Address   string        `json:"address"`
	PublicKey string        `json:"publicKey"`
	Format    AddressFormat `json:"format"`
}

// Complete reports whether all fields of the entry are populated.
func (a AddressInfo) Complete() bool {
	return a.Address != "" && a.PublicKey != "" && a.Format != ""
}
