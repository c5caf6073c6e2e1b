// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/codepoint"
)

// Writer encodes code points into a buffered resource.
type Writer struct {
	dst     xfer.Writable
	enc     Encoding
	scratch []byte
}

// NewWriter returns a Writer encoding enc into dst.
func NewWriter(dst xfer.Writable, enc Encoding) *Writer {
	return &Writer{dst: dst, enc: enc, scratch: make([]byte, 0, 4)}
}

// Encoding returns the target encoding.
func (w *Writer) Encoding() Encoding { return w.enc }

// SetOrder changes the byte order of the following writes.
func (w *Writer) SetOrder(o Order) { w.enc.Order = o }

// WriteCodePoint encodes cp. A value that is not a scalar fails with
// codepoint.ErrInvalidCodePoint and writes nothing.
func (w *Writer) WriteCodePoint(cp rune) error {
	b, err := w.enc.AppendRune(w.scratch[:0], cp)
	if err != nil {
		return err
	}
	_, err = w.dst.Write(b)
	return err
}

// WriteBOM writes U+FEFF in the target encoding.
func (w *Writer) WriteBOM() error { return w.WriteCodePoint(codepoint.BOM) }

// WriteString encodes the UTF-8 string s. It returns the number of bytes of
// s consumed, which is short of len(s) only with an error.
func (w *Writer) WriteString(s string) (int, error) {
	b := []byte(s)
	off := 0
	for off < len(b) {
		cp, n, err := codepoint.Decode(b[off:])
		if err != nil {
			return off, shiftErr(err, off)
		}
		if err := w.WriteCodePoint(cp); err != nil {
			return off, err
		}
		off += n
	}
	return off, nil
}

// WriteLine writes s followed by a line feed.
func (w *Writer) WriteLine(s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	return w.WriteCodePoint(codepoint.LineFeed)
}

// Flush flushes the underlying resource.
func (w *Writer) Flush() error { return w.dst.Flush() }

// WriteUnits encodes the code points held in units, whatever their form.
func WriteUnits[U codepoint.Unit](w *Writer, units []U) error {
	for cp, err := range codepoint.All(units) {
		if err != nil {
			return err
		}
		if err := w.WriteCodePoint(cp); err != nil {
			return err
		}
	}
	return nil
}
