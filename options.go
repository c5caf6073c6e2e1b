// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "github.com/rs/zerolog"

// Option configures a buffered resource.
type Option func(*options)

type options struct {
	bufferSize int
	name       string
	logger     zerolog.Logger
}

func defaultOptions() options {
	return options{
		bufferSize: DefaultBufferSize,
		name:       "-",
		logger:     zerolog.Nop(),
	}
}

// WithBufferSize sets the buffer capacity. 0 makes the resource unbuffered;
// negative values are treated as 0.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.bufferSize = n
	}
}

// Unbuffered is WithBufferSize(0).
func Unbuffered() Option { return WithBufferSize(0) }

// WithName labels the resource in traces.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger traces every raw call at trace level. The default logger
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
