// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codepoint

// Iterator walks the code points of a code-unit sequence in both directions.
// It holds the sequence and a unit offset that always sits on a sequence
// boundary, from 0 up to len(units).
//
// Moving never validates the scalar it steps over; Value does. A failed move
// leaves the iterator where it was.
type Iterator[U Unit] struct {
	units []U
	off   int
}

// Begin returns an iterator on the first code point of units.
func Begin[U Unit](units []U) Iterator[U] { return Iterator[U]{units: units} }

// End returns the one-past-the-last iterator of units.
func End[U Unit](units []U) Iterator[U] { return Iterator[U]{units: units, off: len(units)} }

// At returns an iterator at the given unit offset. The offset is trusted to be
// on a boundary; it is clamped to [0, len(units)].
func At[U Unit](units []U, off int) Iterator[U] {
	off = max(0, min(off, len(units)))
	return Iterator[U]{units: units, off: off}
}

// Offset returns the unit offset from the start of the sequence.
func (it Iterator[U]) Offset() int { return it.off }

// AtEnd reports whether the iterator is past the last code point.
func (it Iterator[U]) AtEnd() bool { return it.off >= len(it.units) }

// Units returns the whole sequence.
func (it Iterator[U]) Units() []U { return it.units }

// Rest returns the units from the iterator to the end.
func (it Iterator[U]) Rest() []U { return it.units[it.off:] }

// Equal reports whether both iterators walk the same sequence and sit at the
// same offset.
func (it Iterator[U]) Equal(other Iterator[U]) bool {
	if it.off != other.off || len(it.units) != len(other.units) {
		return false
	}
	return len(it.units) == 0 || &it.units[0] == &other.units[0]
}

// Value decodes the code point at the iterator. Error offsets count from the
// start of the sequence.
func (it Iterator[U]) Value() (rune, error) {
	cp, _, err := Decode(it.units[it.off:])
	if err != nil {
		return 0, shift(err, it.off)
	}
	return cp, nil
}

// Next moves past the code point at the iterator. At the end, or when the
// sequence is cut short, it fails with KindPastEnd.
func (it *Iterator[U]) Next() error {
	n, err := span(it.units[it.off:])
	if err != nil {
		return shift(err, it.off)
	}
	it.off += n
	return nil
}

// Prev moves back to the start of the previous code point. At the beginning,
// or when continuation bytes run up to the beginning, it fails.
func (it *Iterator[U]) Prev() error {
	off, err := retreat(it.units, it.off)
	if err != nil {
		return err
	}
	it.off = off
	return nil
}

// Advance moves n code points, backwards when n is negative. UTF-32 moves in
// one step; other forms step one code point at a time and stop at the last
// good boundary on failure.
func (it *Iterator[U]) Advance(n int) error {
	if Width[U]() == 4 {
		off := it.off + n
		if off < 0 || off > len(it.units) {
			return pastEnd(max(0, min(off, len(it.units))))
		}
		it.off = off
		return nil
	}
	for ; n > 0; n-- {
		if err := it.Next(); err != nil {
			return err
		}
	}
	for ; n < 0; n++ {
		if err := it.Prev(); err != nil {
			return err
		}
	}
	return nil
}

// Distance returns the number of code points from it to other, which must
// walk the same sequence at or after it.
func (it Iterator[U]) Distance(other Iterator[U]) (int, error) {
	n := 0
	for it.off < other.off {
		if err := it.Next(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
