// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package sync contains synchronization primitives that extend the standard
// library's sync package.
package sync // import "satlink.network/go-satlink/pkg/sync"

import (
	"context"
	"sync"
)

// Mutex is a mutex that additionally supports non-blocking and
// context-bounded acquisition. The zero value is an unlocked mutex.
type Mutex struct {
	locked chan struct{} // Capacity 1; holds a value while locked.
	once   sync.Once
}

func (m *Mutex) initOnce() {
	m.once.Do(func() { m.locked = make(chan struct{}, 1) })
}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() {
	m.initOnce()
	m.locked <- struct{}{}
}

// TryLock attempts to acquire the mutex without blocking.
// Returns whether the mutex was acquired.
func (m *Mutex) TryLock() bool {
	m.initOnce()
	select {
	case m.locked <- struct{}{}:
		return true
	default:
		return false
	}
}

// TryLockCtx attempts to acquire the mutex until the context is cancelled.
// Returns whether the mutex was acquired. A cancelled context never acquires
// the mutex, even if it would be immediately available.
func (m *Mutex) TryLockCtx(ctx context.Context) bool {
	m.initOnce()
	select {
	case <-ctx.Done():
		return false
	default:
	}

	select {
	case m.locked <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

// Unlock releases the mutex. Panics if the mutex was not locked.
func (m *Mutex) Unlock() {
	m.initOnce()
	select {
	case <-m.locked:
	default:
		panic("unlock of unlocked mutex")
	}
}
