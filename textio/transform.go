// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio

import (
	"golang.org/x/text/transform"

	"code.hybscloud.com/xfer/codepoint"
)

// Transcoder converts text between two encodings as a transform.Transformer,
// so it plugs into transform.NewReader, transform.NewWriter and
// transform.String.
type Transcoder struct {
	from, to Encoding
	emitBOM  bool
	skipBOM  bool

	cur     Encoding
	started bool
}

var _ transform.Transformer = (*Transcoder)(nil)

// TranscoderOption configures a Transcoder.
type TranscoderOption func(*Transcoder)

// EmitBOM writes a byte order mark before the output.
func EmitBOM() TranscoderOption { return func(t *Transcoder) { t.emitBOM = true } }

// SkipBOM drops a byte order mark at the start of the input. A reversed mark
// in UTF-16 or UTF-32 input switches the input order.
func SkipBOM() TranscoderOption { return func(t *Transcoder) { t.skipBOM = true } }

// NewTranscoder returns a Transcoder from one encoding to another.
func NewTranscoder(from, to Encoding, opts ...TranscoderOption) *Transcoder {
	t := &Transcoder{from: from, to: to}
	for _, opt := range opts {
		opt(t)
	}
	t.Reset()
	return t
}

// Reset implements transform.Transformer.
func (t *Transcoder) Reset() {
	t.cur = t.from
	t.started = false
}

// Transform implements transform.Transformer. Malformed input fails with a
// *codepoint.Error whose offset counts code units from the start of src.
func (t *Transcoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.started {
		if t.skipBOM {
			n, ok := t.sniff(src, atEOF)
			if !ok {
				return 0, 0, transform.ErrShortSrc
			}
			nSrc = n
		}
		if t.emitBOM {
			bom := t.to.bom()
			if len(dst) < len(bom) {
				return 0, 0, transform.ErrShortDst
			}
			nDst = copy(dst, bom)
		}
		t.started = true
	}

	unit := t.cur.Form.UnitSize()
	for nSrc < len(src) {
		cp, size, derr := t.cur.DecodeRune(src[nSrc:])
		if derr != nil {
			if !atEOF && codepoint.KindOf(derr) == codepoint.KindPastEnd {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, shiftErr(derr, nSrc/unit)
		}
		if len(dst)-nDst < t.to.RuneLen(cp) {
			return nDst, nSrc, transform.ErrShortDst
		}
		out, _ := t.to.AppendRune(dst[nDst:nDst], cp)
		nDst += len(out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// sniff looks for a mark in the input form. ok is false when more input is
// needed to decide.
func (t *Transcoder) sniff(src []byte, atEOF bool) (n int, ok bool) {
	same := t.cur.bom()
	if t.cur.Form == UTF8 {
		if len(src) < len(same) && !atEOF && string(src) == string(same[:len(src)]) {
			return 0, false
		}
		if len(src) >= len(same) && string(src[:len(same)]) == string(same) {
			return len(same), true
		}
		return 0, true
	}
	if len(src) < len(same) && !atEOF {
		return 0, false
	}
	if len(src) < len(same) {
		return 0, true
	}
	swapped := Encoding{Form: t.cur.Form, Order: t.cur.Order.Swap()}
	switch string(src[:len(same)]) {
	case string(same):
		return len(same), true
	case string(swapped.bom()):
		t.cur = swapped
		return len(same), true
	}
	return 0, true
}
