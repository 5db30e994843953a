// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package wallet

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies wallet and session failures.
type ErrorCode int

const (
	// CodeUnknown is any failure that does not fit another code. The original
	// error message is preserved.
	CodeUnknown ErrorCode = iota

	// CodeNotInstalled means the wallet extension is absent. Callers should
	// direct the user to an install page.
	CodeNotInstalled

	// CodeUserCancelled means the user rejected the permission prompt.
	CodeUserCancelled

	// CodeEmptyResponse means the extension returned zero addresses.
	CodeEmptyResponse

	// CodeIncompleteAddressSet means a dual-address wallet did not return an
	// address for every required format.
	CodeIncompleteAddressSet

	// CodeNoWalletConnected means an operation requiring a connected identity
	// was invoked without one.
	CodeNoWalletConnected

	// CodeExtensionNotReady means the extension did not become ready within
	// the readiness wait. It is only produced on the silent reconnect path.
	CodeExtensionNotReady
)

// Message returns the user-facing description of the code.
func (c ErrorCode) Message() string {
	switch c {
	case CodeNotInstalled:
		return "wallet extension is not installed"
	case CodeUserCancelled:
		return "connection request was cancelled"
	case CodeEmptyResponse:
		return "wallet returned no addresses"
	case CodeIncompleteAddressSet:
		return "wallet did not return all required address types"
	case CodeNoWalletConnected:
		return "no wallet connected"
	case CodeExtensionNotReady:
		return "wallet extension did not become ready"
	default:
		return "unexpected wallet error"
	}
}

// Error is a typed wallet error. It is created through NewError and inspected
// through CodeOf and IsCode, also when wrapped with pkg/errors.
type Error struct {
	code ErrorCode
	msg  string
}

// NewError creates a typed error with the given code and message.
func NewError(code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg}
}

// NewErrorf creates a typed error with the given code and formatted message.
func NewErrorf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.msg }

// Code returns the error's classification.
func (e *Error) Code() ErrorCode { return e.code }

// CodeOf returns the classification of an error, unwrapping pkg/errors
// causes. Untyped errors classify as CodeUnknown; a nil error has no
// meaningful code and also returns CodeUnknown.
func CodeOf(err error) ErrorCode {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.code
	}
	return CodeUnknown
}

// IsCode reports whether the error classifies as the given code.
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// Wrap classifies an arbitrary provider error. Typed errors pass through
// unchanged; anything else becomes a CodeUnknown error with the original
// message preserved.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var werr *Error
	if errors.As(err, &werr) {
		return err
	}
	return &Error{code: CodeUnknown, msg: err.Error()}
}
