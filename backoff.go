// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer

import "time"

const (
	// DefaultBackoffBase is the first pause of a Backoff.
	DefaultBackoffBase = 500 * time.Microsecond

	// DefaultBackoffMax caps a single pause.
	DefaultBackoffMax = 100 * time.Millisecond
)

// Backoff paces retries of a raw descriptor that reported EAGAIN, turning a
// non-blocking descriptor into the blocking raw resource the engine expects.
//
// Pauses grow linearly in blocks: block n holds n pauses of Base×n, capped at
// Max, each with ±12.5% jitter. The zero value uses the defaults.
type Backoff struct {
	Base time.Duration
	Max  time.Duration

	block int // 0 until the first Wait
	step  int
	rng   uint64
}

// Wait sleeps for the current pause and moves the schedule on.
func (b *Backoff) Wait() {
	if b.block == 0 {
		b.block = 1
		if b.rng == 0 {
			b.rng = uint64(time.Now().UnixNano()) | 1
		}
	}
	time.Sleep(b.jitter(b.Duration()))
	if b.step++; b.step >= b.block {
		b.step = 0
		b.block++
	}
}

// Reset returns to the first block. Call it after a raw call made progress.
func (b *Backoff) Reset() { b.block, b.step = 0, 0 }

// Block returns the current block, starting at 1.
func (b *Backoff) Block() int { return max(b.block, 1) }

// Duration returns the current pause without jitter.
func (b *Backoff) Duration() time.Duration {
	base, limit := b.Base, b.Max
	if base <= 0 {
		base = DefaultBackoffBase
	}
	if limit <= 0 {
		limit = DefaultBackoffMax
	}
	return min(time.Duration(b.Block())*base, limit)
}

// jitter spreads d by up to an eighth either way (xorshift64).
func (b *Backoff) jitter(d time.Duration) time.Duration {
	b.rng ^= b.rng << 13
	b.rng ^= b.rng >> 7
	b.rng ^= b.rng << 17
	r := int64(b.rng>>32)%256 - 128
	return d + time.Duration(int64(d)*r/1024)
}
