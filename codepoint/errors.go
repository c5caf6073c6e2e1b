// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

import (
	"errors"
	"strconv"
)

var (
	// ErrPastEnd means a decode, advance or retreat ran beyond the sequence,
	// including a sequence cut short by the end of input.
	ErrPastEnd = errors.New("codepoint: iterated past end")

	// ErrInvalidEncoding means a code unit could not take the place it was
	// found in: a stray continuation byte, a bad lead byte, or a leading
	// surrogate followed by something other than a trailing surrogate.
	ErrInvalidEncoding = errors.New("codepoint: invalid unicode encoding")

	// ErrInvalidCodePoint means a decoded or supplied scalar is above
	// 0x10FFFF or inside the surrogate range.
	ErrInvalidCodePoint = errors.New("codepoint: invalid code point")
)

// Kind discriminates decode failures.
type Kind uint8

const (
	KindPastEnd Kind = iota + 1
	KindInvalidEncoding
	KindInvalidCodePoint
)

func (k Kind) String() string {
	switch k {
	case KindPastEnd:
		return "PastEnd"
	case KindInvalidEncoding:
		return "InvalidEncoding"
	case KindInvalidCodePoint:
		return "InvalidCodePoint"
	default:
		return "Kind(unknown)"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindPastEnd:
		return ErrPastEnd
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	default:
		return ErrInvalidCodePoint
	}
}

// Error is a decode failure at a code-unit offset.
//
// Offset counts code units from the start of the sequence the failing call
// was given (the iterator's whole sequence for Iterator methods).
type Error struct {
	Kind   Kind
	Offset int
	Value  uint32 // the offending unit or scalar, when there is one
}

func (e *Error) Error() string {
	s := e.Kind.sentinel().Error() + " at unit " + strconv.Itoa(e.Offset)
	if e.Kind != KindPastEnd {
		s += " (0x" + strconv.FormatUint(uint64(e.Value), 16) + ")"
	}
	return s
}

// Unwrap returns the sentinel matching Kind.
func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// KindOf returns the Kind carried by err, or 0 when err is not a decode
// failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrPastEnd):
		return KindPastEnd
	case errors.Is(err, ErrInvalidEncoding):
		return KindInvalidEncoding
	case errors.Is(err, ErrInvalidCodePoint):
		return KindInvalidCodePoint
	}
	return 0
}

func pastEnd(off int) error { return &Error{Kind: KindPastEnd, Offset: off} }

func invalidEncoding(off int, v uint32) error {
	return &Error{Kind: KindInvalidEncoding, Offset: off, Value: v}
}

func invalidCodePoint(off int, v uint32) error {
	return &Error{Kind: KindInvalidCodePoint, Offset: off, Value: v}
}

// shift moves the offset of a decode error by base units.
func shift(err error, base int) error {
	if e, ok := err.(*Error); ok && base != 0 {
		c := *e
		c.Offset += base
		return &c
	}
	return err
}
