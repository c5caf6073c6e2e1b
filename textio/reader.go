// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"io"
	"strings"

	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/codepoint"
)

// Reader decodes code points from a buffered resource.
//
// It keeps one code point of pushback: ReadBOM puts back a code point that is
// not a byte order mark, so the next read returns it again.
type Reader struct {
	src   xfer.Readable
	enc   Encoding
	units int // code units consumed, for error offsets

	back    rune
	hasBack bool
	scratch [4]byte
}

// NewReader returns a Reader decoding enc from src.
func NewReader(src xfer.Readable, enc Encoding) *Reader {
	return &Reader{src: src, enc: enc}
}

// Encoding returns the encoding being decoded. Its order changes when
// ReadBOM meets a reversed mark.
func (r *Reader) Encoding() Encoding { return r.enc }

// Order returns the current byte order.
func (r *Reader) Order() Order { return r.enc.Order }

// SetOrder changes the byte order of the following reads.
func (r *Reader) SetOrder(o Order) { r.enc.Order = o }

// Offset returns the number of code units consumed so far.
func (r *Reader) Offset() int { return r.units }

// readUnit reads one code unit. A clean end returns io.EOF; an end inside a
// multi-byte unit is KindPastEnd.
func (r *Reader) readUnit() (uint32, error) {
	w := r.enc.Form.UnitSize()
	buf := r.scratch[:w]
	_, err := xfer.ReadFull(r.src, buf)
	switch err {
	case nil:
	case io.ErrUnexpectedEOF:
		return 0, &codepoint.Error{Kind: codepoint.KindPastEnd, Offset: r.units}
	default:
		return 0, err
	}
	r.units++
	switch w {
	case 2:
		return uint32(r.enc.Order.binary().Uint16(buf)), nil
	case 4:
		return r.enc.Order.binary().Uint32(buf), nil
	default:
		return uint32(buf[0]), nil
	}
}

// ReadCodePoint reads one code point. It returns io.EOF at a clean end of the
// stream. Malformed input fails with a *codepoint.Error whose offset counts
// code units from the start of the stream.
func (r *Reader) ReadCodePoint() (rune, error) {
	if r.hasBack {
		r.hasBack = false
		return r.back, nil
	}
	u, err := r.readUnit()
	if err != nil {
		return 0, err
	}
	return r.decodeFrom(u)
}

// decodeFrom finishes decoding a code point whose first unit is u.
func (r *Reader) decodeFrom(u uint32) (rune, error) {
	start := r.units - 1
	var (
		cp  rune
		err error
	)
	switch r.enc.Form {
	case UTF8:
		seq := [4]byte{byte(u)}
		n, ok := codepoint.SequenceLength(byte(u))
		if !ok {
			n = 1
		}
		got := 1
		for ; got < n; got++ {
			v, rerr := r.readUnit()
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return 0, rerr
			}
			seq[got] = byte(v)
		}
		cp, _, err = codepoint.Decode(seq[:got])
	case UTF16:
		units := [2]uint16{uint16(u)}
		got := 1
		if codepoint.IsLeadingSurrogate(u) {
			v, rerr := r.readUnit()
			switch rerr {
			case nil:
				units[1] = uint16(v)
				got = 2
			case io.EOF:
			default:
				return 0, rerr
			}
		}
		cp, _, err = codepoint.Decode(units[:got])
	default:
		cp, _, err = codepoint.Decode([]uint32{u})
	}
	if err != nil {
		return 0, shiftErr(err, start)
	}
	return cp, nil
}

// UnreadCodePoint pushes cp back so the next read returns it. Only one code
// point can be pending.
func (r *Reader) UnreadCodePoint(cp rune) {
	r.back, r.hasBack = cp, true
}

// ReadBOM reads one code point and reports it. A byte order mark is consumed.
// For UTF-16 and UTF-32 a mark in the opposite order switches the reader to
// that order and is reported as codepoint.BOM. Any other code point is pushed
// back and returned, so callers can tell that no mark was present.
func (r *Reader) ReadBOM() (rune, error) {
	if r.hasBack {
		return r.back, nil
	}
	u, err := r.readUnit()
	if err != nil {
		return 0, err
	}
	switch {
	case r.enc.Form == UTF16 && u == codepoint.ReversedBOM,
		r.enc.Form == UTF32 && u == codepoint.ReversedBOM<<16:
		r.enc.Order = r.enc.Order.Swap()
		return codepoint.BOM, nil
	}
	cp, err := r.decodeFrom(u)
	if err != nil {
		return 0, err
	}
	if cp != codepoint.BOM {
		r.UnreadCodePoint(cp)
	}
	return cp, nil
}

// AtEnd reports whether no code point is left.
func (r *Reader) AtEnd() (bool, error) {
	if r.hasBack {
		return false, nil
	}
	return r.src.AtEnd()
}

// ReadLine reads up to and including the next line feed and returns the line
// without it. The last line may end at the end of the stream instead. When
// the stream is already at its end ReadLine returns "", io.EOF.
func (r *Reader) ReadLine() (string, error) {
	b, err := AppendLine(r, []byte(nil))
	return string(b), err
}

// ReadAll reads the rest of the stream.
func (r *Reader) ReadAll() (string, error) {
	var sb strings.Builder
	for {
		cp, err := r.ReadCodePoint()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		sb.WriteRune(cp)
	}
}

// AppendLine is ReadLine appending the line to dst in the encoding form of U.
func AppendLine[U codepoint.Unit](r *Reader, dst []U) ([]U, error) {
	read := false
	for {
		cp, err := r.ReadCodePoint()
		if err == io.EOF {
			if !read {
				return dst, io.EOF
			}
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		read = true
		if cp == codepoint.LineFeed {
			return dst, nil
		}
		dst, _ = codepoint.Append(dst, cp)
	}
}

// AppendAll is ReadAll appending to dst in the encoding form of U.
func AppendAll[U codepoint.Unit](r *Reader, dst []U) ([]U, error) {
	for {
		cp, err := r.ReadCodePoint()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		dst, _ = codepoint.Append(dst, cp)
	}
}
