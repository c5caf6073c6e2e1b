// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "io"

// Output is a buffered write resource over a raw writer.
//
// Writes are copied into the buffer. A write that would overflow the buffer
// from its cursor flushes first; a write larger than the capacity then goes
// straight to the raw writer. Nothing reaches the raw writer otherwise until
// Flush, a reposition, or Close.
type Output struct {
	t *transfer
}

var (
	_ Writable        = (*Output)(nil)
	_ Seekable        = (*Output)(nil)
	_ io.Seeker       = (*Output)(nil)
	_ io.ReaderFrom   = (*Output)(nil)
	_ io.StringWriter = (*Output)(nil)
	_ io.ByteWriter   = (*Output)(nil)
	_ io.Closer       = (*Output)(nil)
)

// NewOutput returns an Output writing to raw.
func NewOutput(raw RawWriter, opts ...Option) *Output {
	return &Output{t: newTransfer(raw, nil, raw, opts)}
}

// Write buffers p, flushing first when p does not fit behind the pending
// bytes. It returns len(p) unless the raw writer fails.
func (out *Output) Write(p []byte) (int, error) { return out.t.write(p) }

// WriteString is Write for a string.
func (out *Output) WriteString(s string) (int, error) { return out.t.write([]byte(s)) }

// WriteByte writes a single byte.
func (out *Output) WriteByte(c byte) error {
	_, err := out.t.write([]byte{c})
	return err
}

// Flush writes the pending bytes. It is a no-op when nothing is pending, so a
// second Flush without writes in between issues no raw write.
func (out *Output) Flush() error { return out.t.flush() }

// Buffered returns the number of bytes pending a flush.
func (out *Output) Buffered() int {
	if !out.t.buf.WriteDirty() {
		return 0
	}
	return out.t.buf.Pos()
}

// Cap returns the buffer capacity. 0 means unbuffered.
func (out *Output) Cap() int { return out.t.buf.Cap() }

// Position returns the logical write position, pending bytes included.
func (out *Output) Position() (int64, error) { return out.t.position() }

// SetPosition flushes and repositions the output, returning the new absolute
// position.
func (out *Output) SetPosition(offset int64, ref Reference) (int64, error) {
	return out.t.setPosition(offset, ref)
}

// Seek implements io.Seeker in terms of SetPosition.
func (out *Output) Seek(offset int64, whence int) (int64, error) {
	return out.t.seek(offset, whence)
}

// GoForward moves the position n bytes forward.
func (out *Output) GoForward(n int64) (int64, error) { return out.t.setPosition(n, Current) }

// GoBack moves the position n bytes back.
func (out *Output) GoBack(n int64) (int64, error) { return out.t.setPosition(-n, Current) }

// ReadFrom reads src until end-of-data straight into the buffer's free space,
// flushing whenever it fills up. It implements io.ReaderFrom, so Copy takes
// this path. Pending bytes are left buffered on return.
func (out *Output) ReadFrom(src io.Reader) (int64, error) {
	t := out.t
	if t.closed {
		return 0, ErrClosed
	}
	if t.buf.Cap() == 0 {
		return copyBuffer(writerFunc(t.direct), src, nil)
	}
	if err := t.leaveRead(); err != nil {
		return 0, err
	}

	var total int64
	for {
		if t.buf.Free() == 0 {
			if err := t.flush(); err != nil {
				return total, err
			}
		}
		n, err := t.buf.Load(src)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, nil
		}
	}
}

// Close flushes, then closes the raw writer when it is an io.Closer.
func (out *Output) Close() error { return out.t.close() }

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
