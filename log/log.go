// Copyright (c) 2026 The Satlink Authors. All rights reserved.
// This file is part of go-satlink. Use of this source code is governed by a
// MIT-style license that can be found in the LICENSE file.

// Package log defines the logger interface of go-satlink. Users are expected
// to pass an implementation of this interface to harmonize go-satlink's
// logging with their application logging.
//
// The interface mimics logrus, which is go-satlink's logger of choice. The
// log/logrus subpackage provides a ready-made adapter.
package log // import "satlink.network/go-satlink/log"

// Fields is a collection of fields that can be passed to Logger.WithFields.
type Fields map[string]interface{}

// Logger is a leveled logger with structured field logging capabilities.
// This is the interface that needs to be passed to go-satlink.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Panicf(format string, args ...interface{})

	Trace(args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Panic(args ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(Fields) Logger
	WithError(error) Logger
}

// Log is the framework logger. Framework users should set this variable to
// their logger. It is set to the None non-logging logger by default.
var Log Logger = None

func Tracef(format string, args ...interface{}) { Log.Tracef(format, args...) }
func Debugf(format string, args ...interface{}) { Log.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Log.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }
func Panicf(format string, args ...interface{}) { Log.Panicf(format, args...) }

func Trace(args ...interface{}) { Log.Trace(args...) }
func Debug(args ...interface{}) { Log.Debug(args...) }
func Info(args ...interface{})  { Log.Info(args...) }
func Warn(args ...interface{})  { Log.Warn(args...) }
func Error(args ...interface{}) { Log.Error(args...) }
func Panic(args ...interface{}) { Log.Panic(args...) }

// WithField calls WithField on the framework logger.
func WithField(key string, value interface{}) Logger { return Log.WithField(key, value) }

// WithFields calls WithFields on the framework logger.
func WithFields(fields Fields) Logger { return Log.WithFields(fields) }

// WithError calls WithError on the framework logger.
func WithError(err error) Logger { return Log.WithError(err) }
