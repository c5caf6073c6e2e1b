// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

// Unit is a code unit: 8 bits for UTF-8, 16 for UTF-16, 32 for UTF-32.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Width returns the size of U in bytes: 1, 2 or 4.
func Width[U Unit]() int {
	switch uint64(^U(0)) {
	case 0xFF:
		return 1
	case 0xFFFF:
		return 2
	default:
		return 4
	}
}

// MaxUnits returns the longest encoding of one code point in units of U.
func MaxUnits[U Unit]() int {
	switch Width[U]() {
	case 1:
		return 4
	case 2:
		return 2
	default:
		return 1
	}
}
