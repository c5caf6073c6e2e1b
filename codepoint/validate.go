// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

// Validate scans units and returns an iterator at the first code point that
// fails to decode, or the end iterator when the whole sequence is well formed.
func Validate[U Unit](units []U) Iterator[U] {
	off := 0
	for off < len(units) {
		_, n, err := Decode(units[off:])
		if err != nil {
			break
		}
		off += n
	}
	return Iterator[U]{units: units, off: off}
}

// Check is Validate reporting the failure instead: nil when units is well
// formed, otherwise the decode error at the first bad code point with its
// offset counted from the start of units.
func Check[U Unit](units []U) error {
	it := Validate(units)
	if it.AtEnd() {
		return nil
	}
	_, err := it.Value()
	return err
}

// Valid reports whether units decodes completely.
func Valid[U Unit](units []U) bool { return Validate(units).AtEnd() }

// ValidString reports whether s is well-formed UTF-8 under the same rules as
// Valid on its bytes.
func ValidString(s string) bool { return Valid([]byte(s)) }

// Count returns the number of code points in units. It stops at the first
// failure.
func Count[U Unit](units []U) (int, error) {
	n := 0
	for off := 0; off < len(units); n++ {
		_, m, err := Decode(units[off:])
		if err != nil {
			return n, shift(err, off)
		}
		off += m
	}
	return n, nil
}
