// Copyright 2023 individual contributors. All rights reserved.
// Use of this source code is governed by a Zero-Clause BSD-style
// license that can be found in the LICENSE file.

package corun

import (
	"context"
	"log/slog"
)

const (
	// DefaultCapacity is the number of registry slots, including the
	// one taken by the bootstrap task.
	DefaultCapacity = 128

	// DefaultStackSize is the size in bytes of each task's private
	// stack region.
	DefaultStackSize = 8 << 10
)

type options struct {
	capacity  int
	stackSize int
	logger    *slog.Logger
	fatal     func(error)
}

func defaultOptions() options {
	return options{
		capacity:  DefaultCapacity,
		stackSize: DefaultStackSize,
		logger:    slog.New(discardHandler{}),
		fatal:     func(err error) { panic(err) },
	}
}

// Option configures a Runtime.
type Option func(*options)

// WithCapacity sets the maximum number of live tasks.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			return
		}
		o.capacity = n
	}
}

// WithStackSize sets the size of the private stack region given to
// every spawned task.
func WithStackSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			return
		}
		o.stackSize = n
	}
}

// WithLogger routes the runtime's debug traces to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			return
		}
		o.logger = l
	}
}

// WithFatalHandler replaces the handler invoked when the scheduler
// finds no runnable task. The handler must not return; if it does, the
// runtime panics with the same error.
func WithFatalHandler(fn func(error)) Option {
	return func(o *options) {
		if fn == nil {
			return
		}
		o.fatal = fn
	}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
