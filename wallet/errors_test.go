// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Parallel()

	err := NewError(CodeUserCancelled, "user rejected the request")
	assert.Equal(t, CodeUserCancelled, CodeOf(err))
	assert.True(t, IsCode(err, CodeUserCancelled))
	assert.False(t, IsCode(err, CodeNotInstalled))

	// Codes must survive pkg/errors wrapping.
	wrapped := errors.WithMessage(err, "connecting")
	assert.Equal(t, CodeUserCancelled, CodeOf(wrapped))

	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.False(t, IsCode(nil, CodeUnknown))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil))

	typed := NewError(CodeEmptyResponse, "no addresses")
	assert.Equal(t, typed, Wrap(typed), "typed errors must pass through")

	plain := errors.New("extension exploded")
	wrapped := Wrap(plain)
	assert.Equal(t, CodeUnknown, CodeOf(wrapped))
	assert.EqualError(t, wrapped, "extension exploded", "original message must be preserved")
}

func TestErrorCode_Message(t *testing.T) {
	t.Parallel()

	codes := []ErrorCode{
		CodeUnknown, CodeNotInstalled, CodeUserCancelled, CodeEmptyResponse,
		CodeIncompleteAddressSet, CodeNoWalletConnected, CodeExtensionNotReady,
	}
	seen := make(map[string]bool)
	for _, c := range codes {
		msg := c.Message()
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "codes must have distinct messages")
		seen[msg] = true
	}
}
