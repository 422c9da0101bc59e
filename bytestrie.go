package dicttrie

// Cursor is a stateful walk over one dictionary trie, one already
// -transformed input unit at a time (spec.md §4.2/§6). A Cursor is not
// safe for concurrent use by multiple goroutines, but independent
// Cursors built from the same Blob never interfere with each other even
// though they share the underlying byte slice (spec.md §5).
type Cursor interface {
	// First restarts the match at the trie root with unit. Pass the
	// result of Transform.Apply; -1 (untransformable) is accepted and
	// always yields NoMatch.
	First(unit int32) Status
	// Next feeds one more transformed input unit to an in-progress
	// match. Calling Next after First/Next has returned NoMatch is
	// defined: it returns NoMatch again without altering any state.
	Next(unit int32) Status
	// Current reports the status at the cursor's current position
	// without consuming an input unit.
	Current() Status
	// Reset returns the cursor to the state it had right after
	// construction.
	Reset()
	// Value returns the decoded integer payload of the value node the
	// cursor is parked on, and true, when the most recent First/Next/
	// Current call returned Intermediate or FinalValue. Otherwise it
	// returns (0, false).
	Value() (int, bool)
}

// byteLayout implements the 8-bit-unit encoding (BytesTrieBuilder
// output), grounded on original_source/src/bytes_trie.rs's constants:
// MIN_LINEAR_MATCH=0x10, MAX_LINEAR_MATCH_LENGTH=0x10, MIN_VALUE_LEAD=
// 0x20, VALUE_IS_FINAL=bit 0, MAX_BRANCH_LINEAR_SUB_NODE_LENGTH=5. The
// final-value flag is bit 0, so the value selector is the lead shifted
// right by one; base 0x10 reproduces bytes_trie.rs's literal bucket
// thresholds (0x51, 0x6C, 0x7E, 0x7F) via newLayout's shared gaps.
var byteLayout = newLayout[uint8](5, 0x10, 0x10, 0x20, 0x10,
	func(lead uint8) int { return int(lead) >> 1 },
	func(lead uint8) bool { return lead&1 != 0 },
)

type byteCursor struct {
	c *cursor[uint8]
}

func newByteCursor(data []byte, root int) *byteCursor {
	return &byteCursor{c: newCursor[uint8](data, byteLayout, root)}
}

func (b *byteCursor) First(unit int32) Status { return b.c.first(unit) }
func (b *byteCursor) Next(unit int32) Status  { return b.c.next(unit) }
func (b *byteCursor) Current() Status         { return b.c.current() }
func (b *byteCursor) Reset()                  { b.c.reset() }
func (b *byteCursor) Value() (int, bool)      { return b.c.value() }

// NewCursor builds a Cursor over the blob's trie payload, using whichever
// of the two encodings Header.Type selects (spec.md §4.1, grounded on
// original_source/src/dictionary_iter.rs's DictionaryIterator::new
// dispatch). The returned Cursor is parked at the root and has not yet
// been given an input unit; call First to begin a match.
func (b *Blob) NewCursor() Cursor {
	root := b.trieRoot()
	switch b.Header.Type {
	case TrieTypeUChars:
		return newUCharCursor(decodeUnits16(b.data[root:], b.Header.UnitOrder), 0)
	default:
		return newByteCursor(b.data[root:], 0)
	}
}
