// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"encoding/binary"
	"strings"

	"code.hybscloud.com/xfer/codepoint"
)

// Form is a Unicode encoding form.
type Form uint8

const (
	UTF8 Form = iota
	UTF16
	UTF32
)

func (f Form) String() string {
	switch f {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	default:
		return "Form(unknown)"
	}
}

// UnitSize returns the code-unit size in bytes.
func (f Form) UnitSize() int {
	switch f {
	case UTF16:
		return 2
	case UTF32:
		return 4
	default:
		return 1
	}
}

// Order is the byte order of multi-byte code units.
type Order uint8

const (
	BigEndian Order = iota
	LittleEndian
)

// NativeOrder is the byte order of the running machine.
var NativeOrder = func() Order {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}()

func (o Order) String() string {
	if o == LittleEndian {
		return "LE"
	}
	return "BE"
}

// Swap returns the opposite order.
func (o Order) Swap() Order {
	if o == LittleEndian {
		return BigEndian
	}
	return LittleEndian
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (o Order) binary() byteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Encoding is an encoding form with a byte order. The order is ignored for
// UTF-8.
type Encoding struct {
	Form  Form
	Order Order
}

// Native returns form in the native byte order.
func Native(form Form) Encoding { return Encoding{Form: form, Order: NativeOrder} }

// Predefined encodings in native order.
var (
	EncodingUTF8  = Native(UTF8)
	EncodingUTF16 = Native(UTF16)
	EncodingUTF32 = Native(UTF32)
)

func (e Encoding) String() string {
	if e.Form == UTF8 {
		return e.Form.String()
	}
	return e.Form.String() + e.Order.String()
}

// ParseEncoding parses names such as "utf-8", "utf16", "UTF-16LE" and
// "utf-32be". A multi-byte form without a suffix takes the native order.
func ParseEncoding(name string) (Encoding, bool) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	s = strings.ReplaceAll(s, "_", "")
	var enc Encoding
	switch {
	case strings.HasPrefix(s, "utf8"):
		enc.Form, s = UTF8, s[4:]
	case strings.HasPrefix(s, "utf16"):
		enc.Form, s = UTF16, s[5:]
	case strings.HasPrefix(s, "utf32"):
		enc.Form, s = UTF32, s[5:]
	default:
		return Encoding{}, false
	}
	switch s {
	case "":
		enc.Order = NativeOrder
	case "le":
		enc.Order = LittleEndian
	case "be":
		enc.Order = BigEndian
	default:
		return Encoding{}, false
	}
	if enc.Form == UTF8 {
		enc.Order = NativeOrder
	}
	return enc, true
}

// AppendRune appends the encoding of cp to dst.
func (e Encoding) AppendRune(dst []byte, cp rune) ([]byte, error) {
	switch e.Form {
	case UTF16:
		var tmp [2]uint16
		units, err := codepoint.Append(tmp[:0], cp)
		if err != nil {
			return dst, err
		}
		bo := e.Order.binary()
		for _, u := range units {
			dst = bo.AppendUint16(dst, u)
		}
		return dst, nil
	case UTF32:
		if !codepoint.IsValid(cp) {
			_, err := codepoint.Append([]uint32(nil), cp)
			return dst, err
		}
		return e.Order.binary().AppendUint32(dst, uint32(cp)), nil
	default:
		return codepoint.Append(dst, cp)
	}
}

// RuneLen returns the number of bytes cp encodes to, or 0 when cp is not a
// scalar value.
func (e Encoding) RuneLen(cp rune) int {
	switch e.Form {
	case UTF16:
		return 2 * codepoint.EncodedLen[uint16](cp)
	case UTF32:
		return 4 * codepoint.EncodedLen[uint32](cp)
	default:
		return codepoint.EncodedLen[byte](cp)
	}
}

// DecodeRune decodes the code point at the start of b and returns it with its
// size in bytes. Error offsets count code units from the start of b; a
// trailing partial unit is reported as KindPastEnd.
func (e Encoding) DecodeRune(b []byte) (rune, int, error) {
	switch e.Form {
	case UTF16:
		bo := e.Order.binary()
		if len(b) < 2 {
			return 0, 0, &codepoint.Error{Kind: codepoint.KindPastEnd}
		}
		units := [2]uint16{bo.Uint16(b)}
		n := 1
		if codepoint.IsLeadingSurrogate(uint32(units[0])) {
			if len(b) < 4 {
				return 0, 0, &codepoint.Error{Kind: codepoint.KindPastEnd, Offset: 1}
			}
			units[1] = bo.Uint16(b[2:])
			n = 2
		}
		cp, m, err := codepoint.Decode(units[:n])
		return cp, 2 * m, err
	case UTF32:
		if len(b) < 4 {
			return 0, 0, &codepoint.Error{Kind: codepoint.KindPastEnd}
		}
		cp, _, err := codepoint.Decode([]uint32{e.Order.binary().Uint32(b)})
		return cp, 4, err
	default:
		return codepoint.Decode(b)
	}
}

// bom returns the byte order mark as it appears in e.
func (e Encoding) bom() []byte {
	b, _ := e.AppendRune(nil, codepoint.BOM)
	return b
}

// DetectBOM recognises a byte order mark at the start of b. It returns the
// encoding the mark announces and its length; n is 0 when b starts with no
// mark. UTF-32LE is preferred over UTF-16LE when both match.
func DetectBOM(b []byte) (enc Encoding, n int) {
	for _, e := range []Encoding{
		{UTF32, BigEndian}, {UTF32, LittleEndian},
		{UTF8, NativeOrder},
		{UTF16, BigEndian}, {UTF16, LittleEndian},
	} {
		m := e.bom()
		if len(b) >= len(m) && string(b[:len(m)]) == string(m) {
			return e, len(m)
		}
	}
	return Encoding{}, 0
}

// shiftErr moves the offset of a decode error by base units.
func shiftErr(err error, base int) error {
	if e, ok := err.(*codepoint.Error); ok {
		c := *e
		c.Offset += base
		return &c
	}
	return err
}
