// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

import "context"

// Connector normalizes one wallet extension's address-retrieval response into
// the canonical identity shape. Connectors are stateless; storage and
// listener lifecycle are the session orchestrator's job.
type Connector interface {
	// Kind returns the wallet kind this connector serves.
	Kind() Kind

	// Connect retrieves the provider's addresses for the network and
	// normalizes them into a complete Identity. It never returns a partially
	// populated identity: on any failure the zero Identity is returned
	// together with a typed error.
	Connect(ctx context.Context, p Provider, network Network, readOnly bool) (Identity, error)
}
