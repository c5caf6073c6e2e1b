// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"io"
)

// copyChunk is the staging size Copy uses when neither side offers a fast
// path and no buffer is supplied.
const copyChunk = 32 * 1024

// Copy copies from src to dst until end-of-data on src or an error.
//
// Fast paths: an *Input source drains through its own buffer (WriteTo) and an
// *Output destination reads straight into its buffer (ReadFrom). Bytes left
// pending in an *Output destination are not flushed; call Flush.
//
// Short write recovery: when dst accepts fewer bytes than were read and src
// is seekable, src is moved back over the bytes dst did not take, so a retry
// resumes exactly where the destination stopped.
func Copy(dst io.Writer, src io.Reader) (written int64, err error) {
	return copyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages through buf when no fast path applies.
// If buf is nil a buffer is allocated; if buf has zero length CopyBuffer panics.
func CopyBuffer(dst io.Writer, src io.Reader, buf []byte) (written int64, err error) {
	if buf != nil && len(buf) == 0 {
		panic("empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf)
}

// CopyN copies n bytes (or until an error) from src to dst.
// On return, written == n if and only if err == nil; running out of source
// bytes early reports io.ErrUnexpectedEOF.
func CopyN(dst io.Writer, src io.Reader, n int64) (written int64, err error) {
	if n <= 0 {
		return 0, nil
	}
	lr := limitedReader{R: src, N: n}
	if rf, ok := dst.(io.ReaderFrom); ok {
		written, err = rf.ReadFrom(&lr)
	} else {
		written, err = copyBuffer(dst, &lr, nil)
	}
	if written == n {
		return n, nil
	}
	if err == nil || err == io.EOF {
		return written, io.ErrUnexpectedEOF
	}
	return written, err
}

// limitedReader is io.LimitedReader without the WriterTo indirection, so the
// CopyN limit holds even when R is an *Input.
type limitedReader struct {
	R io.Reader
	N int64
}

func (l *limitedReader) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err = l.R.Read(p)
	if n > 0 {
		l.N -= int64(n)
	}
	return n, err
}

func copyBuffer(dst io.Writer, src io.Reader, buf []byte) (written int64, err error) {
	if wt, ok := src.(io.WriterTo); ok {
		written, err = wt.WriteTo(dst)
		if err == io.EOF {
			err = nil
		}
		return written, err
	}
	if rf, ok := dst.(io.ReaderFrom); ok {
		written, err = rf.ReadFrom(src)
		if err == io.EOF {
			err = nil
		}
		return written, err
	}

	if buf == nil {
		buf = make([]byte, copyChunk)
	}
	for {
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			if nw < 0 {
				nw = 0
			}
			written += int64(nw)
			if ew == nil && nw < nr {
				ew = io.ErrShortWrite
			}
			if ew != nil {
				if nw < nr {
					if serr := rollback(src, nr-nw); serr != nil {
						return written, serr
					}
				}
				return written, ew
			}
		}
		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}
		if nr == 0 {
			// (0, nil) is end-of-data for raw resources.
			return written, nil
		}
	}
}

// rollback moves a seekable src back over n bytes a destination did not
// take. Unseekable sources are left alone; the caller sees the write error.
func rollback(src io.Reader, n int) error {
	s, ok := src.(io.Seeker)
	if !ok {
		return nil
	}
	_, err := s.Seek(-int64(n), io.SeekCurrent)
	return err
}
