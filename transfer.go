// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"io"

	"github.com/rs/zerolog"
)

// transfer is the engine shared by Input, Output and Stream. It owns the
// buffer and the raw capabilities; the exported types only choose which
// methods they expose.
//
// Raw cursor bookkeeping (seekable raw resources):
//   - read window valid: raw == logical - pos, and filled == size.
//   - write window pending: raw == logical - pos.
//   - otherwise pos == 0 and raw == logical.
//
// So the logical position is always raw + pos.
type transfer struct {
	name string
	buf  *Buffer
	r    io.Reader
	w    io.Writer
	s    io.Seeker // nil when the raw resource cannot be repositioned
	c    io.Closer

	// filled is the size of the last fill that was compensated by a rewind.
	// The raw cursor must skip forward over it before the next raw read.
	filled int64

	tie    Flusher
	closed bool
	log    zerolog.Logger
}

func newTransfer(raw any, r io.Reader, w io.Writer, opts []Option) *transfer {
	o := applyOptions(opts)
	t := &transfer{
		name: o.name,
		buf:  NewBuffer(o.bufferSize),
		r:    r,
		w:    w,
		log:  o.logger,
	}
	if s, ok := raw.(io.Seeker); ok {
		// Pipes and terminals implement Seek but fail it.
		if _, err := s.Seek(0, io.SeekCurrent); err == nil {
			t.s = s
		}
	}
	if c, ok := raw.(io.Closer); ok {
		t.c = c
	}
	return t
}

func (t *transfer) trace(op Op, n, want int, err error) {
	e := t.log.Trace()
	if !e.Enabled() {
		return
	}
	e.Str("resource", t.name).Stringer("op", op).Int("n", n).Int("want", want)
	if err != nil && err != io.EOF {
		e.Err(err)
	}
	e.Msg("raw transfer")
}

// ----------------------------------------------------------------------------
// read path
// ----------------------------------------------------------------------------

func (t *transfer) read(p []byte) (int, error) {
	if t.closed {
		return 0, ErrClosed
	}
	if t.r == nil {
		return 0, ErrInvalidAccess
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := t.prepareRead(); err != nil {
		return 0, err
	}

	n := 0
	for n < len(p) {
		if !t.buf.ReadDirty() && t.buf.Unread() > 0 {
			n += t.buf.Read(p[n:])
			continue
		}
		if len(p)-n > t.buf.Cap() {
			// The remainder does not fit: go around the buffer.
			m, err := t.lean(p[n:])
			n += m
			if err != nil {
				return n, err
			}
			if m == 0 {
				return n, io.EOF
			}
			continue
		}
		m, err := t.fill()
		if m == 0 {
			if err != nil {
				return n, err
			}
			return n, io.EOF
		}
		if err != nil {
			n += t.buf.Read(p[n:])
			return n, err
		}
	}
	return n, nil
}

// prepareRead flushes the tied output and any writes pending in a shared
// buffer, so written bytes are visible to the raw read that follows.
func (t *transfer) prepareRead() error {
	if t.tie != nil {
		if err := t.tie.Flush(); err != nil {
			return err
		}
	}
	if t.buf.WriteDirty() {
		if err := t.flush(); err != nil {
			return err
		}
		t.buf.Reset()
	}
	return nil
}

// fill refills the buffer with one raw read. On a seekable raw resource the
// raw cursor is moved back over the filled bytes so it keeps reflecting the
// logical position. A zero count with a nil error means end-of-data.
func (t *transfer) fill() (int, error) {
	if err := t.skip(); err != nil {
		return 0, err
	}
	n, err := t.buf.Fill(t.r)
	t.trace(OpFill, n, t.buf.Cap(), err)
	if err == io.EOF {
		err = nil
	}
	if n > 0 && t.s != nil {
		if _, serr := t.s.Seek(-int64(n), io.SeekCurrent); serr != nil {
			t.buf.Reset()
			return 0, serr
		}
		t.trace(OpRewind, n, n, nil)
		t.filled = int64(n)
	}
	return n, err
}

// lean reads straight into p, bypassing the buffer. The exhausted read window
// is dropped first. io.EOF is returned as is; a (0, nil) read is left to the
// caller to interpret as end-of-data.
func (t *transfer) lean(p []byte) (int, error) {
	if err := t.skip(); err != nil {
		return 0, err
	}
	t.buf.Reset()
	n, err := t.r.Read(p)
	if n < 0 {
		n = 0
	}
	t.trace(OpLean, n, len(p), err)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// skip moves the raw cursor forward over the last compensated fill.
func (t *transfer) skip() error {
	if t.filled == 0 || t.s == nil {
		t.filled = 0
		return nil
	}
	n := t.filled
	t.filled = 0
	if _, err := t.s.Seek(n, io.SeekCurrent); err != nil {
		return err
	}
	t.trace(OpSkip, int(n), int(n), nil)
	return nil
}

func (t *transfer) atEnd() (bool, error) {
	if t.closed {
		return false, ErrClosed
	}
	if t.r == nil {
		return false, ErrInvalidAccess
	}
	if !t.buf.ReadDirty() && t.buf.Unread() > 0 {
		return false, nil
	}
	if err := t.prepareRead(); err != nil {
		return false, err
	}
	if t.buf.Cap() == 0 {
		// Nothing to peek into: compare against the end instead.
		if t.s == nil {
			return false, ErrUnseekable
		}
		cur, err := t.s.Seek(0, io.SeekCurrent)
		if err != nil {
			return false, err
		}
		end, err := t.s.Seek(0, io.SeekEnd)
		if err != nil {
			return false, err
		}
		if _, err := t.s.Seek(cur, io.SeekStart); err != nil {
			return false, err
		}
		return cur >= end, nil
	}
	n, err := t.fill()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// ----------------------------------------------------------------------------
// write path
// ----------------------------------------------------------------------------

func (t *transfer) write(p []byte) (int, error) {
	if t.closed {
		return 0, ErrClosed
	}
	if t.w == nil {
		return 0, ErrInvalidAccess
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := t.leaveRead(); err != nil {
		return 0, err
	}

	c := t.buf.Cap()
	if c == 0 {
		return t.direct(p)
	}
	if t.buf.Pos()+len(p) > c {
		if err := t.flush(); err != nil {
			return 0, err
		}
	}
	if len(p) > c {
		return t.direct(p)
	}
	return t.buf.Write(p), nil
}

// leaveRead drops a valid read window before a write lands in a shared
// buffer, moving the raw cursor to the logical position first.
func (t *transfer) leaveRead() error {
	if t.r == nil || t.buf.ReadDirty() {
		return nil
	}
	if t.s != nil {
		pos := int64(t.buf.Pos())
		t.filled = 0
		if pos > 0 {
			if _, err := t.s.Seek(pos, io.SeekCurrent); err != nil {
				return err
			}
			t.trace(OpSkip, int(pos), int(pos), nil)
		}
	}
	t.buf.Reset()
	return nil
}

func (t *transfer) direct(p []byte) (int, error) {
	n, err := t.w.Write(p)
	t.trace(OpDirect, n, len(p), err)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// flush writes exactly the pending window. Bytes the raw writer did not take
// stay buffered so a later Flush can retry them.
func (t *transfer) flush() error {
	if t.closed {
		return ErrClosed
	}
	if !t.buf.WriteDirty() {
		return nil
	}
	pending := t.buf.Pending()
	want := len(pending)
	n, err := t.w.Write(pending)
	if n < 0 {
		n = 0
	}
	t.trace(OpFlush, n, want, err)
	t.buf.Discard(n)
	if err == nil && n < want {
		err = io.ErrShortWrite
	}
	return err
}

// ----------------------------------------------------------------------------
// positioning
// ----------------------------------------------------------------------------

func (t *transfer) position() (int64, error) {
	if t.closed {
		return 0, ErrClosed
	}
	if t.s == nil {
		return 0, ErrUnseekable
	}
	raw, err := t.s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	return raw + int64(t.buf.Pos()), nil
}

func (t *transfer) setPosition(offset int64, ref Reference) (int64, error) {
	if t.closed {
		return 0, ErrClosed
	}
	if t.s == nil {
		return 0, ErrUnseekable
	}
	if t.w != nil {
		if err := t.flush(); err != nil {
			return 0, err
		}
	}

	var (
		abs int64
		err error
	)
	switch ref {
	case Current:
		cur, perr := t.position()
		if perr != nil {
			return 0, perr
		}
		target := cur + offset
		if target < 0 {
			return cur, ErrNegativePosition
		}
		abs, err = t.s.Seek(target, io.SeekStart)
	case End:
		abs, err = t.s.Seek(offset, io.SeekEnd)
	default:
		if offset < 0 {
			offset = 0
		}
		abs, err = t.s.Seek(offset, io.SeekStart)
	}
	t.buf.Reset()
	t.filled = 0
	t.trace(OpSeek, int(abs), int(offset), err)
	return abs, err
}

func (t *transfer) seek(offset int64, whence int) (int64, error) {
	ref, ok := referenceOf(whence)
	if !ok {
		return 0, ErrInvalidWhence
	}
	return t.setPosition(offset, ref)
}

// ----------------------------------------------------------------------------
// lifetime
// ----------------------------------------------------------------------------

func (t *transfer) close() error {
	if t.closed {
		return ErrClosed
	}
	var err error
	if t.w != nil {
		err = t.flush()
	}
	t.closed = true
	t.tie = nil
	if t.c != nil {
		if cerr := t.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
