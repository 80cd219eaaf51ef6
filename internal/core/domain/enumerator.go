package domain

import "iter"

// MarkIter enumerates every mark in table order: Above, then Within, then Below.
// It can be drained from both ends; the two cursors never cross, and once they
// meet both Next and NextBack report exhaustion.
//
// A MarkIter is not safe for concurrent use. Create one per goroutine with AllMarks.
type MarkIter struct {
	front int
	back  int
}

// AllMarks returns an enumerator positioned over the full mark alphabet.
func AllMarks() *MarkIter {
	return &MarkIter{front: 0, back: TotalMarks}
}

// MarkAt maps a linear index over the concatenated tables to its mark and class.
// The boolean is false when i is outside [0, TotalMarks).
func MarkAt(i int) (rune, MarkClass, bool) {
	if i < 0 {
		return 0, 0, false
	}
	for _, c := range Classes {
		t := c.table()
		if i < len(t) {
			return t[i], c, true
		}
		i -= len(t)
	}
	return 0, 0, false
}

// Len returns the number of marks left between the two cursors.
func (it *MarkIter) Len() int {
	return it.back - it.front
}

// Next returns the mark at the front cursor and advances it.
func (it *MarkIter) Next() (rune, bool) {
	return it.Nth(0)
}

// Nth skips n marks from the front and returns the one after them.
// Skipping past the back cursor exhausts the iterator.
func (it *MarkIter) Nth(n int) (rune, bool) {
	if n < 0 {
		return 0, false
	}
	if n >= it.Len() {
		it.front = it.back
		return 0, false
	}
	r, _, _ := MarkAt(it.front + n)
	it.front += n + 1
	return r, true
}

// NextBack returns the mark just before the back cursor and retreats it.
func (it *MarkIter) NextBack() (rune, bool) {
	if it.Len() == 0 {
		return 0, false
	}
	it.back--
	r, _, _ := MarkAt(it.back)
	return r, true
}

// All drains the iterator from the front.
func (it *MarkIter) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Backward drains the iterator from the back.
func (it *MarkIter) Backward() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := it.NextBack()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
