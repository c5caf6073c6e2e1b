// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codepoint classifies, decodes, encodes and iterates Unicode code
// points stored as UTF-8, UTF-16 or UTF-32 code units.
//
// One generic implementation serves every code-unit width: the width of the
// Unit type argument (8, 16 or 32 bits) selects the encoding form. Wide is
// the platform wide-character unit.
//
// Malformed input is reported deterministically through *Error, whose Kind
// tells truncation (KindPastEnd) from malformation (KindInvalidEncoding) and
// from out-of-range scalars (KindInvalidCodePoint). Match with errors.Is
// against ErrPastEnd, ErrInvalidEncoding and ErrInvalidCodePoint.
package codepoint
