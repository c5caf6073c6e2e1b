// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"io"
)

// Raw resources are plain io values. The aliases below let callers stay in the
// xfer namespace when wiring a raw resource into a buffered one.

// RawReader is the raw read capability consumed by Input and Stream.
//
// Read returns the bytes actually transferred. A return of (0, io.EOF) or
// (0, nil) is end-of-data; a fill that gets fewer bytes than requested is not
// an error.
//
// RawReader is an alias of io.Reader.
type RawReader = io.Reader

// RawWriter is the raw write capability consumed by Output and Stream.
//
// RawWriter is an alias of io.Writer.
type RawWriter = io.Writer

// RawSeeker is the optional raw positioning capability. When a raw reader also
// implements it, fills are compensated so positions stay logical.
//
// RawSeeker is an alias of io.Seeker.
type RawSeeker = io.Seeker

// RawReadWriteSeeker is the raw capability required by Stream.
//
// RawReadWriteSeeker is an alias of io.ReadWriteSeeker.
type RawReadWriteSeeker = io.ReadWriteSeeker

// Readable is the buffered read capability.
//
// Read transfers len(p) bytes unless end-of-data is reached first, in which
// case the count is short and err is io.EOF. AtEnd reports whether no byte
// remains, filling the buffer if needed to find out.
type Readable interface {
	io.Reader
	AtEnd() (bool, error)
}

// Writable is the buffered write capability.
type Writable interface {
	io.Writer
	Flusher
}

// Flusher pushes buffered writes to the raw resource.
//
// Flush is a no-op when nothing is pending.
type Flusher interface {
	Flush() error
}

// Seekable is the positioning capability of buffered resources.
//
// SetPosition returns the new absolute, logical position. Position reports
// the logical position, which accounts for buffered bytes.
type Seekable interface {
	SetPosition(offset int64, ref Reference) (int64, error)
	Position() (int64, error)
}

// Reference selects what a position offset is relative to.
type Reference uint8

const (
	// Begin resolves offsets from the start. Negative offsets clamp to 0.
	Begin Reference = iota
	// Current resolves offsets from the logical position.
	Current
	// End resolves offsets from the end of the resource.
	End
)

func (r Reference) String() string {
	switch r {
	case Begin:
		return "begin"
	case Current:
		return "current"
	case End:
		return "end"
	default:
		return "Reference(unknown)"
	}
}

// whence maps r to the io.Seek* constant.
func (r Reference) whence() int {
	switch r {
	case Current:
		return io.SeekCurrent
	case End:
		return io.SeekEnd
	default:
		return io.SeekStart
	}
}

// referenceOf maps an io.Seek* constant to a Reference.
func referenceOf(whence int) (Reference, bool) {
	switch whence {
	case io.SeekStart:
		return Begin, true
	case io.SeekCurrent:
		return Current, true
	case io.SeekEnd:
		return End, true
	default:
		return 0, false
	}
}

// Access is the access mode of a raw resource.
type Access uint8

const (
	AccessRead Access = 1 << iota
	AccessWrite

	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead reports whether a permits reading.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite reports whether a permits writing.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "read-write"
	default:
		return "none"
	}
}
