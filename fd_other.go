// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package xfer

import "os"

// FD is a raw resource over a descriptor. Outside Unix it goes through
// os.File.
type FD struct {
	*File
}

// NewFD wraps fd. name labels errors.
func NewFD(fd int, name string, access Access) *FD {
	return &FD{File: NewFile(os.NewFile(uintptr(fd), name), access)}
}

// OpenFD opens path for the given access.
func OpenFD(path string, access Access) (*FD, error) {
	f, err := OpenFile(path, access)
	if err != nil {
		return nil, err
	}
	return &FD{File: f}, nil
}

// Fd returns the descriptor.
func (d *FD) Fd() int { return int(d.OS().Fd()) }
