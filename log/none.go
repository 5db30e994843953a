// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

package log

import "fmt"

// None is a logger that discards everything except panics. It is the default
// framework logger.
var None Logger = &none{}

type none struct{}

func (n *none) Tracef(string, ...interface{}) {}
func (n *none) Debugf(string, ...interface{}) {}
func (n *none) Infof(string, ...interface{})  {}
func (n *none) Warnf(string, ...interface{})  {}
func (n *none) Errorf(string, ...interface{}) {}

func (n *none) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func (n *none) Trace(...interface{}) {}
func (n *none) Debug(...interface{}) {}
func (n *none) Info(...interface{})  {}
func (n *none) Warn(...interface{})  {}
func (n *none) Error(...interface{}) {}

func (n *none) Panic(args ...interface{}) {
	panic(fmt.Sprint(args...))
}

func (n *none) WithField(string, interface{}) Logger { return n }
func (n *none) WithFields(Fields) Logger             { return n }
func (n *none) WithError(error) Logger               { return n }
