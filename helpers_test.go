// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer_test

import (
	"errors"
	"io"
)

// ----------------------------------------------------------------------------
// Test helpers
// ----------------------------------------------------------------------------

// recorder wraps a raw resource and records the size of every raw read and
// write that reaches it.
type recorder struct {
	raw    io.ReadWriteSeeker
	reads  []int
	writes []string
	seeks  int
}

func (r *recorder) Read(p []byte) (int, error) {
	r.reads = append(r.reads, len(p))
	return r.raw.Read(p)
}

func (r *recorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, string(p))
	return r.raw.Write(p)
}

func (r *recorder) Seek(offset int64, whence int) (int64, error) {
	r.seeks++
	return r.raw.Seek(offset, whence)
}

// plainReader hides every method except Read.
type plainReader struct{ r io.Reader }

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

// plainWriter hides every method except Write.
type plainWriter struct{ w io.Writer }

func (p plainWriter) Write(b []byte) (int, error) { return p.w.Write(b) }

// shortWriter accepts at most max bytes per call.
type shortWriter struct {
	max int
	got []byte
}

func (w *shortWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.max)
	w.got = append(w.got, p[:n]...)
	return n, nil
}

var errBoom = errors.New("boom")

// errReader returns its error on every call.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// errWriter returns its error on every call.
type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

// zeroReader reports (0, nil) forever.
type zeroReader struct{}

func (zeroReader) Read([]byte) (int, error) { return 0, nil }

// countingFlusher counts Flush calls.
type countingFlusher struct {
	n   int
	err error
}

func (f *countingFlusher) Flush() error {
	f.n++
	return f.err
}

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + i%26)
	}
	return b
}
