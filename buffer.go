// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "io"

// DefaultBufferSize is the buffer capacity used when no WithBufferSize option
// is given.
const DefaultBufferSize = 4096

// Buffer is the single fixed-capacity byte window owned by a resource.
//
// Invariant: 0 <= Pos() <= Len() <= Cap().
//
// Two dirty flags track synchronisation with the raw resource:
//   - read-dirty: the contents cannot serve reads and must be refilled first.
//     Setting it resets the cursor to 0.
//   - write-dirty: the window [0, Pos()) holds writes not yet flushed.
//     Clearing it resets the cursor to 0.
//
// The cursor reset is applied only by SetReadDirty and SetWriteDirty; callers
// never move the cursor themselves when changing a flag.
//
// A capacity of 0 means unbuffered: resources bypass the buffer entirely.
type Buffer struct {
	data       []byte
	size       int
	pos        int
	readDirty  bool
	writeDirty bool
}

// NewBuffer returns an empty, read-dirty buffer with the given capacity.
// A negative capacity is treated as 0.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, capacity), readDirty: true}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Len returns the number of valid bytes (the size cursor).
func (b *Buffer) Len() int { return b.size }

// Pos returns the buffer cursor.
func (b *Buffer) Pos() int { return b.pos }

// Unread returns the number of bytes between the cursor and the size cursor.
func (b *Buffer) Unread() int { return b.size - b.pos }

// Free returns the room left for writes at the cursor.
func (b *Buffer) Free() int { return len(b.data) - b.pos }

// ReadDirty reports whether the buffer must be refilled before serving reads.
func (b *Buffer) ReadDirty() bool { return b.readDirty }

// WriteDirty reports whether the buffer holds unflushed writes.
func (b *Buffer) WriteDirty() bool { return b.writeDirty }

// SetReadDirty sets the read-dirty flag. Setting it resets the cursor to 0.
func (b *Buffer) SetReadDirty(dirty bool) {
	b.readDirty = dirty
	if dirty {
		b.pos = 0
	}
}

// SetWriteDirty sets the write-dirty flag. Clearing it resets the cursor to 0.
func (b *Buffer) SetWriteDirty(dirty bool) {
	b.writeDirty = dirty
	if !dirty {
		b.pos = 0
	}
}

// Read copies min(len(dst), Unread()) bytes from the cursor into dst and
// advances the cursor. It never reads past the size cursor; a short count is
// not an error.
func (b *Buffer) Read(dst []byte) int {
	n := copy(dst, b.data[b.pos:b.size])
	b.pos += n
	return n
}

// Write copies src at the cursor, advances it and marks the buffer
// write-dirty. The caller ensures Pos()+len(src) <= Cap(); the buffer does not
// make room, and bytes past the capacity are dropped.
func (b *Buffer) Write(src []byte) int {
	n := copy(b.data[b.pos:], src)
	b.pos += n
	if b.pos > b.size {
		b.size = b.pos
	}
	b.SetWriteDirty(true)
	return n
}

// Load performs one raw read into the free space at the cursor, as if the
// bytes had been passed to Write. It marks the buffer write-dirty only when
// bytes arrive.
func (b *Buffer) Load(r io.Reader) (int, error) {
	n, err := r.Read(b.data[b.pos:])
	if n > 0 {
		b.pos += n
		if b.pos > b.size {
			b.size = b.pos
		}
		b.SetWriteDirty(true)
	}
	return n, err
}

// Pending returns the written window [0, Pos()) awaiting a flush.
func (b *Buffer) Pending() []byte { return b.data[:b.pos] }

// Fill performs one raw read of up to Cap() bytes into the buffer. On return
// the size cursor holds the count, the cursor is 0 and read-dirty is cleared.
// A zero count means end-of-data.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	n, err := r.Read(b.data)
	if n < 0 {
		n = 0
	}
	b.size = n
	b.pos = 0
	b.readDirty = false
	return n, err
}

// Discard drops written bytes from the front of the pending window after a
// partial flush, sliding the rest to offset 0. The buffer stays write-dirty.
func (b *Buffer) Discard(n int) {
	if n <= 0 {
		return
	}
	if n >= b.pos {
		b.SetWriteDirty(false)
		b.size = 0
		return
	}
	copy(b.data, b.data[n:b.pos])
	b.pos -= n
	b.size = b.pos
}

// Reset empties the buffer: size and cursor are 0, read-dirty is set and
// write-dirty cleared. Pending writes are lost.
func (b *Buffer) Reset() {
	b.size = 0
	b.SetWriteDirty(false)
	b.SetReadDirty(true)
}
