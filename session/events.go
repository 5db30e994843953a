// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package session

import "satlink.network/go-satlink/wallet"

// EventType is the type of a session event.
type EventType int

const (
	// EventConnected is sent after a successful connect, including the
	// reconnects triggered by account-change notifications. A presentation
	// layer typically closes its wallet chooser on this event.
	EventConnected EventType = iota

	// EventDisconnected is sent after an explicit disconnect and after any
	// failed connect attempt.
	EventDisconnected
)

// Event is a session state change notification.
type Event struct {
	Type EventType
	Kind wallet.Kind

	// Err is the failure that caused an EventDisconnected, or nil for an
	// explicit disconnect.
	Err error
}
