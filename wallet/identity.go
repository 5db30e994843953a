// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

// Identity is the canonical session object: the normalized payment and
// ordinal address/public-key/format bundle of a connected wallet.
//
// An identity is either fully populated or fully empty. Partial identities
// must never be observable by consumers; the session store rejects them at
// the write boundary. For single-address wallets, the payment and ordinal
// triples hold the same underlying address.
type Identity struct {
	PaymentAddress   string        `json:"paymentAddress"`
	PaymentPublicKey string        `json:"paymentPublicKey"`
	PaymentFormat    AddressFormat `json:"paymentFormat"`

	OrdinalAddress   string        `json:"ordinalAddress"`
	OrdinalPublicKey string        `json:"ordinalPublicKey"`
	OrdinalFormat    AddressFormat `json:"ordinalFormat"`
}

// Empty reports whether all six fields are unpopulated.
func (id Identity) Empty() bool {
	return id == Identity{}
}

// Complete reports whether all six fields are populated.
func (id Identity) Complete() bool {
	return id.PaymentAddress != "" && id.PaymentPublicKey != "" && id.PaymentFormat != "" &&
		id.OrdinalAddress != "" && id.OrdinalPublicKey != "" && id.OrdinalFormat != ""
}

// SingleIdentity builds an identity from a single-address wallet entry by
// replicating the triple into both the payment and ordinal role.
func SingleIdentity(a AddressInfo) Identity {
	return Identity{
		PaymentAddress:   a.Address,
		PaymentPublicKey: a.PublicKey,
		PaymentFormat:    a.Format,
		OrdinalAddress:   a.Address,
		OrdinalPublicKey: a.PublicKey,
		OrdinalFormat:    a.Format,
	}
}

// DualIdentity builds an identity from distinct payment and ordinal entries.
func DualIdentity(payment, ordinal AddressInfo) Identity {
	return Identity{
		PaymentAddress:   payment.Address,
		PaymentPublicKey: payment.PublicKey,
		PaymentFormat:    payment.Format,
		OrdinalAddress:   ordinal.Address,
		OrdinalPublicKey: ordinal.PublicKey,
		OrdinalFormat:    ordinal.Format,
	}
}
