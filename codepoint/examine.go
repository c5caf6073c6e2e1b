// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

const (
	// MaxCodePoint is the largest Unicode scalar value.
	MaxCodePoint = 0x10FFFF
	// BOM is the byte order mark.
	BOM = 0xFEFF
	// ReversedBOM is the BOM read with the wrong byte order in UTF-16.
	ReversedBOM = 0xFFFE
	// LineFeed terminates lines in text streams.
	LineFeed = 0x0A

	surrogateMin      = 0xD800
	leadSurrogateMax  = 0xDBFF
	trailSurrogateMin = 0xDC00
	surrogateMax      = 0xDFFF
	surrogateBase     = 0x10000
)

// IsStandaloneByte reports whether b is a single-byte UTF-8 sequence (0xxxxxxx).
func IsStandaloneByte(b byte) bool { return b&0x80 == 0 }

// IsLeadingByte reports whether b starts a multi-byte UTF-8 sequence (11xxxxxx).
func IsLeadingByte(b byte) bool { return b&0xC0 == 0xC0 }

// IsTrailingByte reports whether b continues a UTF-8 sequence (10xxxxxx).
func IsTrailingByte(b byte) bool { return b&0xC0 == 0x80 }

// SequenceLength returns the length of the UTF-8 sequence that lead starts:
// 0xxxxxxx 1, 110xxxxx 2, 1110xxxx 3, 11110xxx 4. Trailing bytes and
// 11111xxx start no sequence.
func SequenceLength(lead byte) (int, bool) {
	switch {
	case lead&0x80 == 0x00:
		return 1, true
	case lead&0xE0 == 0xC0:
		return 2, true
	case lead&0xF0 == 0xE0:
		return 3, true
	case lead&0xF8 == 0xF0:
		return 4, true
	default:
		return 0, false
	}
}

// leadPayload keeps the payload bits of a lead byte for a sequence of length n.
func leadPayload(lead byte, n int) rune {
	switch n {
	case 1:
		return rune(lead)
	case 2:
		return rune(lead & 0x1F)
	case 3:
		return rune(lead & 0x0F)
	default:
		return rune(lead & 0x07)
	}
}

// IsLeadingSurrogate reports whether u is in [0xD800, 0xDBFF].
func IsLeadingSurrogate(u uint32) bool { return u >= surrogateMin && u <= leadSurrogateMax }

// IsTrailingSurrogate reports whether u is in [0xDC00, 0xDFFF].
func IsTrailingSurrogate(u uint32) bool { return u >= trailSurrogateMin && u <= surrogateMax }

// IsSurrogate reports whether u is in [0xD800, 0xDFFF].
func IsSurrogate(u uint32) bool { return u >= surrogateMin && u <= surrogateMax }

// IsValid reports whether cp is a Unicode scalar value: at most 0x10FFFF and
// outside the surrogate range.
func IsValid(cp rune) bool {
	return cp >= 0 && cp <= MaxCodePoint && !IsSurrogate(uint32(cp))
}

// DigitValue returns the value of ch as a digit in bases up to 36: '0'-'9'
// are 0-9 and letters, in either case, continue from 10.
func DigitValue(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// IsRadixDigit reports whether ch is a digit of the given radix. Radixes
// outside [2, 36] have no digits.
func IsRadixDigit(ch rune, radix int) bool {
	if radix < 2 || radix > 36 {
		return false
	}
	v, ok := DigitValue(ch)
	return ok && v < radix
}
