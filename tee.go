// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "io"

// TeeReader returns a reader that writes to w every byte it reads from r.
// Bytes are mirrored before any error from r is returned. A failed or short
// mirror write ends the read with that error, or io.ErrShortWrite.
func TeeReader(r io.Reader, w io.Writer) io.Reader {
	return &teeReader{r: r, w: w}
}

type teeReader struct {
	r io.Reader
	w io.Writer
}

func (t *teeReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		nw, ew := t.w.Write(p[:n])
		if ew != nil {
			return nw, ew
		}
		if nw != n {
			return nw, io.ErrShortWrite
		}
	}
	return n, err
}

// Tee duplicates writes to a primary and a secondary destination. It is
// Writable: Flush flushes whichever of the two buffer.
//
// The primary is written first; the secondary only sees bytes the primary
// took in full.
type Tee struct {
	primary   io.Writer
	secondary io.Writer
}

var _ Writable = (*Tee)(nil)

// NewTee returns a Tee writing to primary and secondary.
func NewTee(primary, secondary io.Writer) *Tee {
	return &Tee{primary: primary, secondary: secondary}
}

func (t *Tee) Write(p []byte) (int, error) {
	n, err := t.primary.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	n, err = t.secondary.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}

// Flush flushes the primary, then the secondary.
func (t *Tee) Flush() error {
	for _, w := range [...]io.Writer{t.primary, t.secondary} {
		if f, ok := w.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
