// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

// Op identifies the kind of raw call a buffered resource issued.
//
// It is coarse-grained on purpose: it tells a trace reader whether bytes moved
// through the buffer (fill, flush), around it (lean, direct), or whether the
// raw cursor was only repositioned (skip, rewind, seek).
type Op uint8

const (
	// OpFill is a raw read that tops up the buffer to its capacity.
	OpFill Op = iota
	// OpLean is a raw read straight into the caller's slice.
	OpLean

	// OpFlush is a raw write of the pending buffer window.
	OpFlush
	// OpDirect is a raw write straight from the caller's slice.
	OpDirect

	// OpRewind moves the raw cursor back by the amount just filled.
	OpRewind
	// OpSkip moves the raw cursor forward over a previously filled window.
	OpSkip
	// OpSeek is a caller-requested reposition.
	OpSeek
)

func (op Op) String() string {
	switch op {
	case OpFill:
		return "fill"
	case OpLean:
		return "lean"
	case OpFlush:
		return "flush"
	case OpDirect:
		return "direct"
	case OpRewind:
		return "rewind"
	case OpSkip:
		return "skip"
	case OpSeek:
		return "seek"
	default:
		return "Op(unknown)"
	}
}

// IsRead reports whether op transfers bytes from the raw resource.
func (op Op) IsRead() bool { return op == OpFill || op == OpLean }

// IsWrite reports whether op transfers bytes to the raw resource.
func (op Op) IsWrite() bool { return op == OpFlush || op == OpDirect }
