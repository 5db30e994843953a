// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package logrus adapts a logrus logger to the go-satlink logger interface.
package logrus // import "satlink.network/go-satlink/log/logrus"

import (
	"github.com/sirupsen/logrus"

	"satlink.network/go-satlink/log"
)

// Logger wraps a logrus entry so that it satisfies the log.Logger interface.
type Logger struct {
	*logrus.Entry
}

var _ log.Logger = (*Logger)(nil)

// FromLogrus wraps a logrus logger into a go-satlink logger.
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{logrus.NewEntry(l)}
}

// Set sets the given logrus logger as the framework logger.
func Set(l *logrus.Logger) {
	log.Log = FromLogrus(l)
}

// WithField returns a logger with the given field set.
func (l *Logger) WithField(key string, value interface{}) log.Logger {
	return &Logger{l.Entry.WithField(key, value)}
}

// WithFields returns a logger with the given fields set.
func (l *Logger) WithFields(fields log.Fields) log.Logger {
	return &Logger{l.Entry.WithFields(logrus.Fields(fields))}
}

// WithError returns a logger with the given error field set.
func (l *Logger) WithError(err error) log.Logger {
	return &Logger{l.Entry.WithError(err)}
}
