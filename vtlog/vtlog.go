// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtlog/vtlog.go
// Summary: Thin structured-logging shim shared by the parser, the sixel
// sub-parser, and the termprops registry.
// Usage: diagnostics only, never control flow — see parser.Parser's
// error-handling design.

// Package vtlog wraps *zap.Logger so the parser packages can log
// diagnostics (dropped sequences, control-set mismatches, rejected
// registry installs) without forcing a logging dependency on callers
// that don't want one.
package vtlog

import "go.uber.org/zap"

// Logger is the logging capability the parser, sixel, and termprops
// packages depend on. The zero value discards everything, like Nop;
// use New to log through a *zap.Logger.
type Logger struct {
	z *zap.Logger
}

// Nop returns a Logger that discards everything, at zero allocation
// cost on the hot path. This is the default for every constructor in
// this module.
func Nop() Logger { return Logger{z: zap.NewNop()} }

// New wraps an existing *zap.Logger. A nil logger behaves like Nop.
func New(z *zap.Logger) Logger {
	if z == nil {
		return Nop()
	}
	return Logger{z: z}
}

func (l Logger) Debug(msg string, fields ...zap.Field) {
	if l.z != nil {
		l.z.Debug(msg, fields...)
	}
}

func (l Logger) Warn(msg string, fields ...zap.Field) {
	if l.z != nil {
		l.z.Warn(msg, fields...)
	}
}

// Field re-exports zap.Field constructors so callers of this package
// don't need a direct zap import just to build a log call.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Uint32 = zap.Uint32
	Rune   = func(key string, r rune) Field { return zap.Int32(key, r) }
	Error  = zap.Error
)
