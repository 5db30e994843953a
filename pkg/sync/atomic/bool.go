// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package atomic contains extended atomic types.
package atomic // import "satlink.network/go-satlink/pkg/sync/atomic"

import "sync/atomic"

// Bool is an atomic boolean. The zero value is an unset boolean.
type Bool int32

// Set atomically sets the boolean.
func (b *Bool) Set() { atomic.StoreInt32((*int32)(b), 1) }

// Unset atomically unsets the boolean.
func (b *Bool) Unset() { atomic.StoreInt32((*int32)(b), 0) }

// IsSet atomically reads whether the boolean is set.
func (b *Bool) IsSet() bool { return atomic.LoadInt32((*int32)(b)) == 1 }

// TrySet atomically sets the boolean and returns whether it was unset before.
func (b *Bool) TrySet() bool {
	return atomic.CompareAndSwapInt32((*int32)(b), 0, 1)
}

// TryUnset atomically unsets the boolean and returns whether it was set
// before.
func (b *Bool) TryUnset() bool {
	return atomic.CompareAndSwapInt32((*int32)(b), 1, 0)
}
