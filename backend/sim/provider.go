// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package sim provides a fully functional in-process wallet extension. It
// derives real secp256k1 keys from a BIP-39 mnemonic and serves both a
// nested-segwit payment address and a taproot ordinal address per account.
// It is the reference provider implementation and the integration test
// fixture of go-satlink.
package sim // import "satlink.network/go-satlink/backend/sim"

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/hkdf"

	"satlink.network/go-satlink/wallet"
)

// hkdfInfo domain-separates the key expansion of the simulated wallet.
var hkdfInfo = []byte("go-satlink/backend/sim")

// account holds one derived account with its payment and ordinal key pair.
type account struct {
	paymentKey *btcec.PrivateKey
	ordinalKey *btcec.PrivateKey
	payment    wallet.AddressInfo
	ordinal    wallet.AddressInfo
}

// Provider is a simulated wallet extension. It implements wallet.Provider
// and wallet.AccountNotifier and is safe for concurrent use.
type Provider struct {
	mutex      sync.Mutex
	network    wallet.Network
	params     *chaincfg.Params
	accounts   []*account
	active     int
	denying    bool
	listeners  map[wallet.ListenerHandle]func()
	nextHandle wallet.ListenerHandle
}

var (
	_ wallet.Provider        = (*Provider)(nil)
	_ wallet.AccountNotifier = (*Provider)(nil)
)

// NewProvider creates a simulated wallet with numAccounts accounts derived
// from the given mnemonic.
func NewProvider(mnemonic string, network wallet.Network, numAccounts int) (*Provider, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	if numAccounts < 1 {
		return nil, errors.New("need at least one account")
	}
	params, err := netParams(network)
	if err != nil {
		return nil, err
	}

	seed := bip39.NewSeed(mnemonic, "")
	expand := hkdf.New(sha256.New, seed, nil, hkdfInfo)

	p := &Provider{
		network:   network,
		params:    params,
		listeners: make(map[wallet.ListenerHandle]func()),
	}
	for i := 0; i < numAccounts; i++ {
		acc, err := deriveAccount(expand, params)
		if err != nil {
			return nil, errors.WithMessagef(err, "deriving account %d", i)
		}
		p.accounts = append(p.accounts, acc)
	}
	return p, nil
}

func netParams(network wallet.Network) (*chaincfg.Params, error) {
	switch network {
	case wallet.NetworkMainnet:
		return &chaincfg.MainNetParams, nil
	case wallet.NetworkTestnet:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, errors.Errorf("unsupported network %q", network)
	}
}

// deriveAccount reads two private keys from the expansion stream and builds
// the account's p2sh-p2wpkh payment and p2tr ordinal address.
func deriveAccount(expand io.Reader, params *chaincfg.Params) (*account, error) {
	paymentKey, err := readKey(expand)
	if err != nil {
		return nil, err
	}
	ordinalKey, err := readKey(expand)
	if err != nil {
		return nil, err
	}

	paymentPub := paymentKey.PubKey().SerializeCompressed()
	wpkh, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(paymentPub), params)
	if err != nil {
		return nil, errors.Wrap(err, "building witness program")
	}
	redeem, err := txscript.PayToAddrScript(wpkh)
	if err != nil {
		return nil, errors.Wrap(err, "building redeem script")
	}
	p2sh, err := btcutil.NewAddressScriptHash(redeem, params)
	if err != nil {
		return nil, errors.Wrap(err, "building p2sh address")
	}

	taprootKey := txscript.ComputeTaprootKeyNoScript(ordinalKey.PubKey())
	xonly := schnorr.SerializePubKey(taprootKey)
	p2tr, err := btcutil.NewAddressTaproot(xonly, params)
	if err != nil {
		return nil, errors.Wrap(err, "building taproot address")
	}

	return &account{
		paymentKey: paymentKey,
		ordinalKey: ordinalKey,
		payment: wallet.AddressInfo{
			Address:   p2sh.EncodeAddress(),
			PublicKey: hex.EncodeToString(paymentPub),
			Format:    wallet.FormatP2SH,
		},
		ordinal: wallet.AddressInfo{
			Address:   p2tr.EncodeAddress(),
			PublicKey: hex.EncodeToString(xonly),
			Format:    wallet.FormatP2TR,
		},
	}, nil
}

func readKey(expand io.Reader) (*btcec.PrivateKey, error) {
	var raw [32]byte
	if _, err := io.ReadFull(expand, raw[:]); err != nil {
		return nil, errors.Wrap(err, "expanding seed")
	}
	key, _ := btcec.PrivKeyFromBytes(raw[:])
	return key, nil
}

// GetAddresses returns the active account's payment and ordinal address.
// While denial is enabled, non-readonly requests fail like a rejected
// permission prompt.
func (p *Provider) GetAddresses(_ context.Context, req wallet.AddressRequest) ([]wallet.AddressInfo, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if req.Network != p.network {
		return nil, errors.Errorf("wallet is on network %q, requested %q", p.network, req.Network)
	}
	if p.denying && !req.ReadOnly {
		return nil, wallet.NewError(wallet.CodeUserCancelled, "user rejected the request")
	}

	acc := p.accounts[p.active]
	return []wallet.AddressInfo{acc.payment, acc.ordinal}, nil
}

// SignMessage signs the message with the key owning the requested address and
// returns the base64-encoded DER signature.
func (p *Provider) SignMessage(_ context.Context, req wallet.SignRequest) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if req.Network != p.network {
		return "", errors.Errorf("wallet is on network %q, requested %q", p.network, req.Network)
	}

	key := p.keyFor(req.Address)
	if key == nil {
		return "", errors.Errorf("address %q is not part of this wallet", req.Address)
	}

	digest := chainhash.DoubleHashB([]byte(req.Message))
	sig := ecdsa.Sign(key, digest)
	return base64.StdEncoding.EncodeToString(sig.Serialize()), nil
}

// keyFor returns the private key owning the address, searching all accounts.
// Must be called with the mutex held.
func (p *Provider) keyFor(address string) *btcec.PrivateKey {
	for _, acc := range p.accounts {
		switch address {
		case acc.payment.Address:
			return acc.paymentKey
		case acc.ordinal.Address:
			return acc.ordinalKey
		}
	}
	return nil
}

// AddAccountListener registers an account-change callback.
func (p *Provider) AddAccountListener(onChange func()) (wallet.ListenerHandle, error) {
	if onChange == nil {
		return 0, errors.New("nil listener")
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.nextHandle++
	p.listeners[p.nextHandle] = onChange
	return p.nextHandle, nil
}

// RemoveAccountListener deregisters a handle. Removing an unknown handle is
// an error.
func (p *Provider) RemoveAccountListener(h wallet.ListenerHandle) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.listeners[h]; !ok {
		return errors.Errorf("unknown listener handle %d", h)
	}
	delete(p.listeners, h)
	return nil
}

// Listeners returns the number of registered account-change listeners.
func (p *Provider) Listeners() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.listeners)
}

// SwitchAccount advances to the next derived account and notifies all
// registered listeners, like a user switching accounts in the extension.
func (p *Provider) SwitchAccount() {
	p.mutex.Lock()
	p.active = (p.active + 1) % len(p.accounts)
	notify := make([]func(), 0, len(p.listeners))
	for _, cb := range p.listeners {
		notify = append(notify, cb)
	}
	p.mutex.Unlock()

	// Callbacks run outside the lock so that they may call back into the
	// provider.
	for _, cb := range notify {
		cb()
	}
}

// Deny makes subsequent interactive address requests fail like a rejected
// permission prompt. Readonly requests are unaffected.
func (p *Provider) Deny() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.denying = true
}

// Allow lifts a previous Deny.
func (p *Provider) Allow() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.denying = false
}
