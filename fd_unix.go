// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package xfer

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// FD is a raw resource over a bare file descriptor. Interrupted calls are
// retried; EAGAIN on a non-blocking descriptor waits on a Backoff and retries,
// so reads and writes always block until they make progress or fail.
//
// Seek on a pipe or terminal fails with ESPIPE, which makes buffered resources
// treat the descriptor as unseekable.
type FD struct {
	fd      int
	name    string
	access  Access
	backoff Backoff
}

var _ io.ReadWriteSeeker = (*FD)(nil)

// NewFD wraps fd. name labels errors.
func NewFD(fd int, name string, access Access) *FD {
	return &FD{fd: fd, name: name, access: access}
}

// OpenFD opens path with open(2) for the given access.
func OpenFD(path string, access Access) (*FD, error) {
	var flag int
	switch access {
	case AccessRead:
		flag = unix.O_RDONLY
	case AccessWrite:
		flag = unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
	case AccessReadWrite:
		flag = unix.O_RDWR | unix.O_CREAT
	default:
		return nil, ErrInvalidAccess
	}
	for {
		fd, err := unix.Open(path, flag|unix.O_CLOEXEC, 0o644)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(os.NewSyscallError("open", err), "xfer: open %s", path)
		}
		return NewFD(fd, path, access), nil
	}
}

// Fd returns the descriptor.
func (d *FD) Fd() int { return d.fd }

func (d *FD) Read(p []byte) (int, error) {
	if !d.access.CanRead() {
		return 0, ErrInvalidAccess
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(d.fd, p)
		switch err {
		case nil:
			d.backoff.Reset()
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			d.backoff.Wait()
			continue
		}
		return 0, d.wrap("read", err)
	}
}

// Write writes all of p unless the descriptor fails.
func (d *FD) Write(p []byte) (int, error) {
	if !d.access.CanWrite() {
		return 0, ErrInvalidAccess
	}
	total := 0
	for total < len(p) {
		n, err := unix.Write(d.fd, p[total:])
		if n > 0 {
			total += n
			d.backoff.Reset()
		}
		switch err {
		case nil:
			if n == 0 {
				return total, io.ErrShortWrite
			}
			continue
		case unix.EINTR:
			continue
		case unix.EAGAIN:
			d.backoff.Wait()
			continue
		}
		return total, d.wrap("write", err)
	}
	return total, nil
}

func (d *FD) Seek(offset int64, whence int) (int64, error) {
	off, err := unix.Seek(d.fd, offset, whence)
	if err != nil {
		return 0, d.wrap("seek", err)
	}
	return off, nil
}

// Close closes the descriptor.
func (d *FD) Close() error {
	if err := unix.Close(d.fd); err != nil {
		return d.wrap("close", err)
	}
	return nil
}

func (d *FD) wrap(op string, err error) error {
	return errors.Wrapf(os.NewSyscallError(op, err), "xfer: %s %s", op, d.name)
}
