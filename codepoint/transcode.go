// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

import "iter"

// AppendTranscoded decodes src and appends the encoding of every code point
// to dst in the form of To. On failure it returns dst extended by the code
// points before the bad one, and the decode error with its offset in src.
func AppendTranscoded[To, From Unit](dst []To, src []From) ([]To, error) {
	for off := 0; off < len(src); {
		cp, n, err := Decode(src[off:])
		if err != nil {
			return dst, shift(err, off)
		}
		dst, _ = Append(dst, cp)
		off += n
	}
	return dst, nil
}

// Transcode converts src into a new sequence in the form of To.
func Transcode[To, From Unit](src []From) ([]To, error) {
	return AppendTranscoded(make([]To, 0, len(src)), src)
}

// FromString converts the UTF-8 string s into units of U.
func FromString[U Unit](s string) ([]U, error) {
	return Transcode[U]([]byte(s))
}

// ToString converts units into a UTF-8 string.
func ToString[U Unit](units []U) (string, error) {
	b, err := AppendTranscoded[byte](nil, units)
	return string(b), err
}

// All returns an iterator over the code points of units yielding each with
// its unit offset. On a decode failure it yields the error once and stops.
//
//	for cp, err := range codepoint.All(units) { ... }
func All[U Unit](units []U) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for off := 0; off < len(units); {
			cp, n, err := Decode(units[off:])
			if err != nil {
				yield(0, shift(err, off))
				return
			}
			if !yield(cp, nil) {
				return
			}
			off += n
		}
	}
}

// Runes decodes the whole of units into a rune slice.
func Runes[U Unit](units []U) ([]rune, error) {
	out := make([]rune, 0, len(units))
	for cp, err := range All(units) {
		if err != nil {
			return out, err
		}
		out = append(out, cp)
	}
	return out, nil
}
