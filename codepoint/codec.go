// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

// Decode decodes the code point at the start of units and returns it with
// the number of units it occupies. Error offsets are relative to units.
//
// The failure kinds follow the encoding form:
//   - UTF-8: a trailing byte or 11111xxx where a lead is expected is
//     KindInvalidEncoding; a sequence cut short is KindPastEnd; a
//     non-trailing byte inside a sequence is KindInvalidEncoding at that byte.
//   - UTF-16: a leading surrogate at the end is KindPastEnd; one followed by
//     a non-trailing unit is KindInvalidEncoding; a lone trailing surrogate
//     decodes to a surrogate scalar and is KindInvalidCodePoint.
//   - UTF-32: any value that is not a scalar is KindInvalidCodePoint.
//
// Overlong UTF-8 forms are accepted and decode to their scalar.
func Decode[U Unit](units []U) (rune, int, error) {
	if len(units) == 0 {
		return 0, 0, pastEnd(0)
	}
	var (
		cp  rune
		n   int
		err error
	)
	switch Width[U]() {
	case 1:
		cp, n, err = decode8(units)
	case 2:
		cp, n, err = decode16(units)
	default:
		cp, n = rune(int64(units[0])), 1
		if uint64(units[0]) > MaxCodePoint {
			return 0, 0, invalidCodePoint(0, uint32(units[0]))
		}
	}
	if err != nil {
		return 0, 0, err
	}
	if !IsValid(cp) {
		return 0, 0, invalidCodePoint(0, uint32(cp))
	}
	return cp, n, nil
}

func decode8[U Unit](units []U) (rune, int, error) {
	lead := byte(units[0])
	n, ok := SequenceLength(lead)
	if !ok {
		return 0, 0, invalidEncoding(0, uint32(lead))
	}
	cp := leadPayload(lead, n)
	for i := 1; i < n; i++ {
		if i >= len(units) {
			return 0, 0, pastEnd(i)
		}
		b := byte(units[i])
		if !IsTrailingByte(b) {
			return 0, 0, invalidEncoding(i, uint32(b))
		}
		cp = cp<<6 | rune(b&0x3F)
	}
	return cp, n, nil
}

func decode16[U Unit](units []U) (rune, int, error) {
	u0 := uint32(units[0])
	if !IsLeadingSurrogate(u0) {
		return rune(u0), 1, nil
	}
	if len(units) < 2 {
		return 0, 0, pastEnd(1)
	}
	u1 := uint32(units[1])
	if !IsTrailingSurrogate(u1) {
		return 0, 0, invalidEncoding(1, u1)
	}
	return rune((u0-surrogateMin)<<10+(u1-trailSurrogateMin)) + surrogateBase, 2, nil
}

// span returns the number of units the sequence at the start of units
// occupies without checking the scalar it decodes to.
func span[U Unit](units []U) (int, error) {
	if len(units) == 0 {
		return 0, pastEnd(0)
	}
	switch Width[U]() {
	case 1:
		lead := byte(units[0])
		n, ok := SequenceLength(lead)
		if !ok {
			return 0, invalidEncoding(0, uint32(lead))
		}
		for i := 1; i < n; i++ {
			if i >= len(units) {
				return 0, pastEnd(i)
			}
			if b := byte(units[i]); !IsTrailingByte(b) {
				return 0, invalidEncoding(i, uint32(b))
			}
		}
		return n, nil
	case 2:
		if !IsLeadingSurrogate(uint32(units[0])) {
			return 1, nil
		}
		if len(units) < 2 {
			return 0, pastEnd(1)
		}
		if u1 := uint32(units[1]); !IsTrailingSurrogate(u1) {
			return 0, invalidEncoding(1, u1)
		}
		return 2, nil
	default:
		return 1, nil
	}
}

// DecodeLast decodes the code point that ends units. It walks back over
// continuation units to the start of the sequence and decodes forward from
// there; the sequence must end exactly at len(units).
func DecodeLast[U Unit](units []U) (rune, int, error) {
	end := len(units)
	if end == 0 {
		return 0, 0, pastEnd(0)
	}
	start, err := retreat(units, end)
	if err != nil {
		return 0, 0, err
	}
	cp, n, err := Decode(units[start:])
	if err != nil {
		return 0, 0, shift(err, start)
	}
	if start+n != end {
		return 0, 0, invalidEncoding(start+n, uint32(units[start+n]))
	}
	return cp, n, nil
}

// retreat returns the offset of the sequence that ends right before off.
func retreat[U Unit](units []U, off int) (int, error) {
	if off <= 0 {
		return 0, pastEnd(0)
	}
	i := off - 1
	switch Width[U]() {
	case 1:
		for IsTrailingByte(byte(units[i])) {
			if i == 0 || off-i >= 4 {
				return 0, invalidEncoding(i, uint32(units[i]))
			}
			i--
		}
	case 2:
		if IsTrailingSurrogate(uint32(units[i])) && i > 0 && IsLeadingSurrogate(uint32(units[i-1])) {
			i--
		}
	}
	return i, nil
}

// EncodedLen returns the number of U units cp encodes to, or 0 when cp is not
// a scalar value.
func EncodedLen[U Unit](cp rune) int {
	if !IsValid(cp) {
		return 0
	}
	switch Width[U]() {
	case 1:
		switch {
		case cp < 0x80:
			return 1
		case cp < 0x800:
			return 2
		case cp < 0x10000:
			return 3
		default:
			return 4
		}
	case 2:
		if cp < surrogateBase {
			return 1
		}
		return 2
	default:
		return 1
	}
}

// Append appends the encoding of cp to dst. It fails with
// KindInvalidCodePoint, leaving dst as is, when cp is not a scalar value.
func Append[U Unit](dst []U, cp rune) ([]U, error) {
	if !IsValid(cp) {
		return dst, invalidCodePoint(0, uint32(cp))
	}
	switch Width[U]() {
	case 1:
		switch {
		case cp < 0x80:
			return append(dst, U(cp)), nil
		case cp < 0x800:
			return append(dst,
				U(0xC0|cp>>6),
				U(0x80|cp&0x3F)), nil
		case cp < 0x10000:
			return append(dst,
				U(0xE0|cp>>12),
				U(0x80|cp>>6&0x3F),
				U(0x80|cp&0x3F)), nil
		default:
			return append(dst,
				U(0xF0|cp>>18),
				U(0x80|cp>>12&0x3F),
				U(0x80|cp>>6&0x3F),
				U(0x80|cp&0x3F)), nil
		}
	case 2:
		if cp < surrogateBase {
			return append(dst, U(cp)), nil
		}
		cp -= surrogateBase
		return append(dst,
			U(surrogateMin+cp>>10),
			U(trailSurrogateMin+cp&0x3FF)), nil
	default:
		return append(dst, U(cp)), nil
	}
}

// Encode writes the encoding of cp into dst and returns the number of units
// written. dst must hold at least EncodedLen units; a shorter dst fails with
// KindPastEnd.
func Encode[U Unit](dst []U, cp rune) (int, error) {
	n := EncodedLen[U](cp)
	if n == 0 {
		return 0, invalidCodePoint(0, uint32(cp))
	}
	if len(dst) < n {
		return 0, pastEnd(len(dst))
	}
	var tmp [4]U
	enc, _ := Append(tmp[:0], cp)
	return copy(dst, enc), nil
}
