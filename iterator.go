package dicttrie

// Iterator walks a transformed 16-bit code-unit buffer and reports
// successive dictionary-word boundaries using greedy longest-match
// lookup (spec.md §4.3, grounded on
// original_source/src/dictionary_iter.rs's DictionaryIterator::next).
//
// An Iterator is single-threaded. Build one per buffer; see SegmentAll
// for concurrent multi-buffer segmentation.
type Iterator struct {
	blob  *Blob
	units []int32
	pos   int
	cur   Cursor
}

// NewIterator transforms input through blob's Transform once up front
// and returns an Iterator ready to walk it from the beginning.
// Untransformable code units become the -1 sentinel the cursor always
// reports NoMatch for (spec.md §4.1/§7).
func NewIterator(blob *Blob, input []uint16) *Iterator {
	units := make([]int32, len(input))
	for i, c := range input {
		units[i] = blob.Header.Transform.Apply(c)
	}
	return &Iterator{blob: blob, units: units}
}

// Pos returns the iterator's current offset into the input.
func (it *Iterator) Pos() int {
	return it.pos
}

// Done reports whether the iterator has consumed the whole input.
func (it *Iterator) Done() bool {
	return it.pos >= len(it.units)
}

// PeekStatus reports the status the most recent Advance call's cursor
// was left parked on, without consuming any further input (spec.md
// §4.2's current(), exercised here so a caller can inspect why the last
// match attempt stopped where it did). Before the first Advance call it
// reports NoMatch.
func (it *Iterator) PeekStatus() Status {
	if it.cur == nil {
		return NoMatch
	}
	return it.cur.Current()
}

// Advance finds the next word boundary starting at the iterator's
// current position, advances past it, and returns the new (exclusive)
// end offset into the original input. The second return is false once
// the iterator has reached end-of-stream.
//
// Matching is greedy: Advance keeps feeding units to a fresh cursor for
// as long as the cursor reports NoValue or Intermediate, remembering the
// most recent position at which a value was seen (Intermediate or
// FinalValue). Three things can happen (spec.md §4.3 steps 3a/4/5):
//
//   - The input runs out before the cursor ever reaches FinalValue or
//     NoMatch (it is still mid-match, on NoValue or Intermediate).
//     Advance commits to the end of the buffer regardless of whether a
//     value was seen along the way: there is no more input left to
//     resolve the match any further.
//   - The cursor reaches NoMatch having never seen a value at this
//     position. The input here matches nothing in the dictionary at
//     all; Advance abandons the rest of the input and reports
//     end-of-stream rather than inventing a boundary.
//   - The cursor reaches FinalValue, or NoMatch after having seen a
//     value. Advance commits to the most recent position a value was
//     seen.
func (it *Iterator) Advance() (int, bool) {
	if it.Done() {
		return 0, false
	}

	cur := it.blob.NewCursor()
	it.cur = cur

	status := cur.First(it.units[it.pos])
	matched := 0
	i := 0
	ranOff := false
	for {
		if status.hasValue() {
			matched = i + 1
		}
		if status == FinalValue || status == NoMatch {
			break
		}
		i++
		if it.pos+i >= len(it.units) {
			ranOff = true
			break
		}
		status = cur.Next(it.units[it.pos+i])
	}

	switch {
	case ranOff:
		it.pos = len(it.units)
		return it.pos, true
	case matched == 0:
		it.pos = len(it.units)
		return 0, false
	default:
		it.pos += matched
		return it.pos, true
	}
}

// Boundaries drains the iterator, returning every boundary offset in
// order. It is a convenience wrapper around repeated Advance calls.
func (it *Iterator) Boundaries() []int {
	var bounds []int
	for {
		b, ok := it.Advance()
		if !ok {
			return bounds
		}
		bounds = append(bounds, b)
	}
}
