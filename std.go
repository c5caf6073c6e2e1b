// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"io"
	"os"
)

// Stdio bundles the standard streams as buffered resources. Build it once at
// the process entry point and pass it down; nothing in this package keeps
// process-wide stream state.
//
// In is tied to Out, so prompts written to Out are visible before a read on
// In blocks. Err is unbuffered.
type Stdio struct {
	In  *Input
	Out *Output
	Err *Output
}

// NewStdio wraps os.Stdin, os.Stdout and os.Stderr. The options apply to In
// and Out.
func NewStdio(opts ...Option) *Stdio {
	return NewStdioFrom(
		NewFile(os.Stdin, AccessRead),
		NewFile(os.Stdout, AccessWrite),
		NewFile(os.Stderr, AccessWrite),
		opts...,
	)
}

// NewStdioFrom builds the bundle over arbitrary raw resources.
func NewStdioFrom(in io.Reader, out, errOut io.Writer, opts ...Option) *Stdio {
	s := &Stdio{
		In:  NewInput(in, append([]Option{WithName("stdin")}, opts...)...),
		Out: NewOutput(out, append([]Option{WithName("stdout")}, opts...)...),
		Err: NewOutput(errOut, append(append([]Option{WithName("stderr")}, opts...), Unbuffered())...),
	}
	s.In.Tie(s.Out)
	return s
}

// Flush flushes Out and Err.
func (s *Stdio) Flush() error {
	if err := s.Out.Flush(); err != nil {
		return err
	}
	return s.Err.Flush()
}
