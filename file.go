// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// File is a raw resource over an *os.File with an access mode. Failures of
// the operating system are wrapped with the operation and file name;
// errors.Is still sees the underlying error.
type File struct {
	f      *os.File
	access Access
}

var _ io.ReadWriteSeeker = (*File)(nil)

// OpenFile opens name for the given access. Write access creates the file;
// write-only access also truncates it.
func OpenFile(name string, access Access) (*File, error) {
	var flag int
	switch access {
	case AccessRead:
		flag = os.O_RDONLY
	case AccessWrite:
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case AccessReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	default:
		return nil, ErrInvalidAccess
	}
	f, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "xfer: open %s", name)
	}
	return &File{f: f, access: access}, nil
}

// NewFile wraps an open file. The access mode restricts what the wrapper
// permits; it does not change how f was opened.
func NewFile(f *os.File, access Access) *File { return &File{f: f, access: access} }

// Name returns the file name.
func (f *File) Name() string { return f.f.Name() }

// Access returns the access mode.
func (f *File) Access() Access { return f.access }

// OS returns the wrapped file.
func (f *File) OS() *os.File { return f.f }

func (f *File) Read(p []byte) (int, error) {
	if !f.access.CanRead() {
		return 0, ErrInvalidAccess
	}
	n, err := f.f.Read(p)
	if err != nil && err != io.EOF {
		err = errors.Wrapf(err, "xfer: read %s", f.f.Name())
	}
	return n, err
}

func (f *File) Write(p []byte) (int, error) {
	if !f.access.CanWrite() {
		return 0, ErrInvalidAccess
	}
	n, err := f.f.Write(p)
	if err != nil {
		err = errors.Wrapf(err, "xfer: write %s", f.f.Name())
	}
	return n, err
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	off, err := f.f.Seek(offset, whence)
	if err != nil {
		err = errors.Wrapf(err, "xfer: seek %s", f.f.Name())
	}
	return off, err
}

// Close closes the file.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return errors.Wrapf(err, "xfer: close %s", f.f.Name())
	}
	return nil
}
