// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "errors"

// xfer keeps its failure set small. End-of-data is not among them: a short
// transfer count (with io.EOF on the read side) is how exhaustion is reported.

// ErrInvalidAccess means the call does not match the access mode the raw
// resource was opened with: reading a write-only resource or writing a
// read-only one.
var ErrInvalidAccess = errors.New("xfer: invalid access mode")

// ErrUnseekable means a positioning call reached a raw resource that cannot
// be repositioned (pipes, terminals, plain readers/writers).
var ErrUnseekable = errors.New("xfer: resource is not seekable")

// ErrNegativePosition means a relative reposition resolved to an offset
// before the start of the resource.
var ErrNegativePosition = errors.New("xfer: negative position")

// ErrClosed means the resource was used after Close.
var ErrClosed = errors.New("xfer: resource closed")

// ErrInvalidWhence means Seek was given a whence other than io.SeekStart,
// io.SeekCurrent or io.SeekEnd.
var ErrInvalidWhence = errors.New("xfer: invalid whence")
