// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import (
	"errors"
	"io"
)

// Outcome classifies the result of a transfer of want bytes.
//
// OutcomeComplete: every requested byte moved.
// OutcomeShort:    end-of-data came first; the count is what was available.
// OutcomeFailure:  the raw resource failed.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeComplete
	OutcomeShort
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "Complete"
	case OutcomeShort:
		return "Short"
	default:
		return "Failure"
	}
}

// IsEndOfData reports whether err only signals exhaustion: nil, io.EOF or a
// wrapped io.EOF. Shortfalls are not failures in xfer.
func IsEndOfData(err error) bool { return err == nil || errors.Is(err, io.EOF) }

// Classify maps a transfer result (n of want bytes, err) to an Outcome.
//
// A full count is Complete even when err is io.EOF. io.ErrUnexpectedEOF is a
// shortfall too: it is how fixed-size helpers report end-of-data mid-record.
func Classify(n, want int, err error) Outcome {
	if n >= want && IsEndOfData(err) {
		return OutcomeComplete
	}
	if IsEndOfData(err) || errors.Is(err, io.ErrUnexpectedEOF) {
		return OutcomeShort
	}
	return OutcomeFailure
}

// ReadFull reads exactly len(p) bytes from r, looping over short reads.
// It returns io.EOF when nothing was read and io.ErrUnexpectedEOF on a
// partial read at end-of-data.
func ReadFull(r io.Reader, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := r.Read(p[n:])
		if m > 0 {
			n += m
		}
		if err != nil || m == 0 {
			if err == nil || err == io.EOF {
				if n == 0 {
					return 0, io.EOF
				}
				if n < len(p) {
					return n, io.ErrUnexpectedEOF
				}
				return n, nil
			}
			return n, err
		}
	}
	return n, nil
}
