// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"encoding/binary"
	"io"

	"code.hybscloud.com/xfer/codepoint"
)

// Memory is an in-memory raw resource backed by a container of code units.
// Byte vectors and strings are Memory[byte]; UTF-16, UTF-32 and wide strings
// are Memory[uint16], Memory[uint32] and Memory[codepoint.Wide].
//
// The raw cursor addresses bytes of the native in-memory layout, so a
// Memory[uint16] holding "Hi" is 4 bytes long. Writes overwrite at the cursor
// and grow the container; writing past the end pads with zero bytes.
type Memory[U codepoint.Unit] struct {
	data   []byte
	off    int64
	access Access
}

var _ io.ReadWriteSeeker = (*Memory[byte])(nil)

// NewMemory returns an empty container with the given access mode.
func NewMemory[U codepoint.Unit](access Access) *Memory[U] {
	return &Memory[U]{access: access}
}

// MemoryOf returns a container holding a copy of units, cursor at 0.
func MemoryOf[U codepoint.Unit](units []U, access Access) *Memory[U] {
	m := &Memory[U]{access: access, data: make([]byte, 0, len(units)*codepoint.Width[U]())}
	for _, u := range units {
		m.data = appendNative(m.data, u)
	}
	return m
}

// MemoryString returns a byte container holding s.
func MemoryString(s string, access Access) *Memory[byte] {
	return &Memory[byte]{access: access, data: []byte(s)}
}

// Access returns the access mode.
func (m *Memory[U]) Access() Access { return m.access }

// Len returns the size in bytes.
func (m *Memory[U]) Len() int { return len(m.data) }

// Bytes returns the native byte layout. The slice aliases the container until
// the next write.
func (m *Memory[U]) Bytes() []byte { return m.data }

// String returns the contents as a byte string.
func (m *Memory[U]) String() string { return string(m.data) }

// Units returns a copy of the contents as code units. A trailing partial unit
// is left out.
func (m *Memory[U]) Units() []U {
	w := codepoint.Width[U]()
	out := make([]U, len(m.data)/w)
	for i := range out {
		out[i] = loadNative[U](m.data[i*w:])
	}
	return out
}

// Read reads from the cursor. It returns (0, io.EOF) at the end.
func (m *Memory[U]) Read(p []byte) (int, error) {
	if !m.access.CanRead() {
		return 0, ErrInvalidAccess
	}
	if m.off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.off:])
	m.off += int64(n)
	return n, nil
}

// Write writes at the cursor, overwriting and growing as needed.
func (m *Memory[U]) Write(p []byte) (int, error) {
	if !m.access.CanWrite() {
		return 0, ErrInvalidAccess
	}
	end := m.off + int64(len(p))
	if end > int64(len(m.data)) {
		if end > int64(cap(m.data)) {
			grown := make([]byte, len(m.data), max(end, 2*int64(cap(m.data))))
			copy(grown, m.data)
			m.data = grown
		}
		clear(m.data[len(m.data):end])
		m.data = m.data[:end]
	}
	copy(m.data[m.off:], p)
	m.off = end
	return len(p), nil
}

// Seek moves the cursor. Offsets past the end are allowed; a negative result
// fails with ErrNegativePosition.
func (m *Memory[U]) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.off
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, ErrInvalidWhence
	}
	if base+offset < 0 {
		return 0, ErrNegativePosition
	}
	m.off = base + offset
	return m.off, nil
}

// Truncate cuts the container to n bytes. The cursor is left as is.
func (m *Memory[U]) Truncate(n int) {
	if n >= 0 && n < len(m.data) {
		m.data = m.data[:n]
	}
}

func appendNative[U codepoint.Unit](dst []byte, u U) []byte {
	switch codepoint.Width[U]() {
	case 1:
		return append(dst, byte(u))
	case 2:
		return binary.NativeEndian.AppendUint16(dst, uint16(u))
	default:
		return binary.NativeEndian.AppendUint32(dst, uint32(u))
	}
}

func loadNative[U codepoint.Unit](b []byte) U {
	switch codepoint.Width[U]() {
	case 1:
		return U(b[0])
	case 2:
		return U(binary.NativeEndian.Uint16(b))
	default:
		return U(binary.NativeEndian.Uint32(b))
	}
}
