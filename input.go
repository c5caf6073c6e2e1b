// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "io"

// Input is a buffered read resource over a raw reader.
//
// Reads are served from the buffer when it holds enough unread bytes. When it
// does not, the unread rest is drained first; the remainder is then either
// read straight into the caller's slice (when it exceeds the capacity) or
// served from a refill. Read keeps going until the request is satisfied or
// the raw reader reports end-of-data.
//
// When the raw reader is seekable, each fill is compensated by moving the raw
// cursor back over the filled bytes, so Position reports the logical read
// cursor. Unseekable raw readers are buffered the same way without the
// compensation; positioning calls then return ErrUnseekable.
type Input struct {
	t *transfer
}

var (
	_ Readable      = (*Input)(nil)
	_ Seekable      = (*Input)(nil)
	_ io.Seeker     = (*Input)(nil)
	_ io.WriterTo   = (*Input)(nil)
	_ io.Closer     = (*Input)(nil)
	_ io.ByteReader = (*Input)(nil)
)

// NewInput returns an Input reading from raw.
func NewInput(raw RawReader, opts ...Option) *Input {
	return &Input{t: newTransfer(raw, raw, nil, opts)}
}

// Read reads len(p) bytes unless end-of-data comes first. A short count is
// always paired with a non-nil error: io.EOF at end-of-data, or the raw
// reader's failure.
func (in *Input) Read(p []byte) (int, error) { return in.t.read(p) }

// ReadByte reads a single byte.
func (in *Input) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := in.t.read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// AtEnd reports whether no byte is left to read. When the buffer is empty it
// is refilled to find out, which may block on interactive raw readers.
// Unbuffered inputs over unseekable raw readers cannot peek and return
// ErrUnseekable.
func (in *Input) AtEnd() (bool, error) { return in.t.atEnd() }

// Tie makes every read flush out first. Use it for prompt/response flows in
// which buffered prompt text must be visible before blocking on input.
// A nil out removes the tie.
func (in *Input) Tie(out Flusher) { in.t.tie = out }

// Tied returns the flusher set by Tie, or nil.
func (in *Input) Tied() Flusher { return in.t.tie }

// Buffered returns the number of unread bytes held in the buffer.
func (in *Input) Buffered() int {
	if in.t.buf.ReadDirty() {
		return 0
	}
	return in.t.buf.Unread()
}

// Cap returns the buffer capacity. 0 means unbuffered.
func (in *Input) Cap() int { return in.t.buf.Cap() }

// Position returns the logical read position.
func (in *Input) Position() (int64, error) { return in.t.position() }

// SetPosition repositions the input and returns the new absolute position.
// The buffered window is discarded; the next read refills.
func (in *Input) SetPosition(offset int64, ref Reference) (int64, error) {
	return in.t.setPosition(offset, ref)
}

// Seek implements io.Seeker in terms of SetPosition.
func (in *Input) Seek(offset int64, whence int) (int64, error) { return in.t.seek(offset, whence) }

// GoForward moves the position n bytes forward.
func (in *Input) GoForward(n int64) (int64, error) { return in.t.setPosition(n, Current) }

// GoBack moves the position n bytes back.
func (in *Input) GoBack(n int64) (int64, error) { return in.t.setPosition(-n, Current) }

// WriteTo drains the input into w until end-of-data, passing through the
// buffer. It implements io.WriterTo, so Copy takes this path.
func (in *Input) WriteTo(w io.Writer) (int64, error) {
	t := in.t
	if t.closed {
		return 0, ErrClosed
	}
	if err := t.prepareRead(); err != nil {
		return 0, err
	}
	if t.buf.Cap() == 0 {
		return copyBuffer(w, readerFunc(t.lean), nil)
	}

	var total int64
	for {
		if !t.buf.ReadDirty() && t.buf.Unread() > 0 {
			chunk := t.buf.data[t.buf.pos:t.buf.size]
			nw, ew := w.Write(chunk)
			if nw > 0 {
				t.buf.pos += nw
				total += int64(nw)
			}
			if ew != nil {
				return total, ew
			}
			if nw < len(chunk) {
				return total, io.ErrShortWrite
			}
			continue
		}
		n, err := t.fill()
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}

// Close closes the raw reader when it is an io.Closer. The input is unusable
// afterwards; a second Close returns ErrClosed.
func (in *Input) Close() error { return in.t.close() }

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
