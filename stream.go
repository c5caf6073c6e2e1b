// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "io"

// Stream is a buffered read-write resource. Its input and output roles share
// one buffer over a seekable raw resource:
//   - a read after buffered writes flushes them first, so the raw read sees
//     the bytes just written;
//   - a write after buffered reads moves the raw cursor to the logical
//     position and drops the read window.
//
// Reposition between a write and a read of the same bytes; Stream does not
// serve reads out of its pending write window.
type Stream struct {
	t *transfer
}

var (
	_ Readable           = (*Stream)(nil)
	_ Writable           = (*Stream)(nil)
	_ Seekable           = (*Stream)(nil)
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)

// NewStream returns a Stream over raw. When raw fails the seekability probe
// the shared window cannot be kept consistent, so the Stream is unbuffered
// regardless of options.
func NewStream(raw RawReadWriteSeeker, opts ...Option) *Stream {
	t := newTransfer(raw, raw, raw, opts)
	if t.s == nil && t.buf.Cap() > 0 {
		t.buf = NewBuffer(0)
	}
	return &Stream{t: t}
}

// Read behaves like Input.Read.
func (s *Stream) Read(p []byte) (int, error) { return s.t.read(p) }

// ReadByte reads a single byte.
func (s *Stream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.t.read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Write behaves like Output.Write.
func (s *Stream) Write(p []byte) (int, error) { return s.t.write(p) }

// WriteString is Write for a string.
func (s *Stream) WriteString(str string) (int, error) { return s.t.write([]byte(str)) }

// WriteByte writes a single byte.
func (s *Stream) WriteByte(c byte) error {
	_, err := s.t.write([]byte{c})
	return err
}

// Flush writes the pending bytes.
func (s *Stream) Flush() error { return s.t.flush() }

// AtEnd reports whether no byte is left to read at the logical position.
func (s *Stream) AtEnd() (bool, error) { return s.t.atEnd() }

// Cap returns the buffer capacity. 0 means unbuffered.
func (s *Stream) Cap() int { return s.t.buf.Cap() }

// Position returns the logical position.
func (s *Stream) Position() (int64, error) { return s.t.position() }

// SetPosition flushes, repositions and returns the new absolute position.
func (s *Stream) SetPosition(offset int64, ref Reference) (int64, error) {
	return s.t.setPosition(offset, ref)
}

// Seek implements io.Seeker in terms of SetPosition.
func (s *Stream) Seek(offset int64, whence int) (int64, error) { return s.t.seek(offset, whence) }

// GoForward moves the position n bytes forward.
func (s *Stream) GoForward(n int64) (int64, error) { return s.t.setPosition(n, Current) }

// GoBack moves the position n bytes back.
func (s *Stream) GoBack(n int64) (int64, error) { return s.t.setPosition(-n, Current) }

// Close flushes, then closes the raw resource when it is an io.Closer.
func (s *Stream) Close() error { return s.t.close() }
