package dicttrie

// cursor is the generic trie-traversal state machine shared by both
// flavours (spec.md §4.2, grounded on original_source/src/bytes_trie.rs's
// BytesTrie::first/next/branch_next). It holds a read-only view over the
// trie payload units plus the minimal state needed to resume traversal
// one unit at a time: whether it has stopped, whether it is partway
// through a linear-match node, and an absolute unit offset.
//
// A cursor is single-threaded and stateful but touches nothing outside
// itself: distinct cursors over the same data slice never interfere
// (spec.md §5).
type cursor[U unit] struct {
	data []U
	lo   layout[U]
	root int

	pos       int
	stopped   bool
	inLinear  bool
	remaining int // valid only while inLinear; see layout.maxLinearMatchLength
}

func newCursor[U unit](data []U, lo layout[U], root int) *cursor[U] {
	return &cursor[U]{data: data, lo: lo, root: root, pos: root}
}

// reset returns the cursor to the state produced by construction.
func (c *cursor[U]) reset() {
	c.pos = c.root
	c.stopped = false
	c.inLinear = false
	c.remaining = 0
}

// current peeks at the status of the position the cursor is parked at,
// without consuming an input unit.
func (c *cursor[U]) current() Status {
	if c.stopped {
		return NoMatch
	}
	if c.inLinear {
		return NoValue
	}
	return c.classifyAt(c.pos)
}

// first restarts traversal from the root with the given input unit, as
// if the cursor had just been constructed. Used at the start of a match
// attempt and whenever a segmentation iterator backtracks to the root.
func (c *cursor[U]) first(inUnit int32) Status {
	c.inLinear = false
	c.remaining = 0
	c.stopped = false
	return c.advanceFrom(c.root, inUnit)
}

// next feeds one more input unit to the cursor. Calling next on a
// stopped cursor is defined and harmless: it returns NoMatch without
// touching any state (spec.md §4.2, "misuse").
func (c *cursor[U]) next(inUnit int32) Status {
	if c.stopped {
		return NoMatch
	}
	if c.inLinear {
		return c.nextLinear(inUnit)
	}
	return c.advanceFrom(c.pos, inUnit)
}

func (c *cursor[U]) stop() {
	c.stopped = true
	c.inLinear = false
}

// classifyAt peeks at the node lead at pos, if any, and reports whether
// it is a value node and if so whether it is final. An out-of-range pos
// is not itself an error here: per spec.md §4.2 it surfaces as stopped
// NoMatch on the *next* call that actually tries to read a node there,
// not on this peek.
func (c *cursor[U]) classifyAt(pos int) Status {
	if pos < 0 || pos >= len(c.data) {
		return NoValue
	}
	lead := c.data[pos]
	if int(lead) < c.lo.minValueLead {
		return NoValue
	}
	if c.lo.isFinalValue(lead) {
		return FinalValue
	}
	return Intermediate
}

// nextLinear handles an input unit while partway through a linear-match
// node: compare against the next expected unit, then either continue the
// match or finish the node and classify its successor.
func (c *cursor[U]) nextLinear(inUnit int32) Status {
	pos := c.pos
	if pos < 0 || pos >= len(c.data) || int32(c.data[pos]) != inUnit {
		c.stop()
		return NoMatch
	}
	pos++
	if c.remaining > 0 {
		c.remaining--
		c.pos = pos
		return NoValue
	}
	c.inLinear = false
	c.pos = pos
	return c.classifyAt(pos)
}

// advanceFrom reads node leads starting at pos until it reaches a
// branch node, a linear-match node, or a terminal value, dispatching the
// input unit into whichever it finds (spec.md §4.2's next_impl /
// next-from-root loop). Value-node leads encountered along the way that
// are not final are "intermediate" markers sitting in front of more
// trie data and are simply skipped over.
func (c *cursor[U]) advanceFrom(pos int, inUnit int32) Status {
	for {
		if pos < 0 || pos >= len(c.data) {
			c.stop()
			return NoMatch
		}
		lead := c.data[pos]
		pos++

		switch {
		case int(lead) < c.lo.minLinearMatch:
			return c.branchNext(pos, int(lead), inUnit)

		case int(lead) < c.lo.minValueLead:
			length := int(lead) - c.lo.minLinearMatch // 0-based: total units = length+1
			if pos >= len(c.data) || int32(c.data[pos]) != inUnit {
				c.stop()
				return NoMatch
			}
			pos++
			if length == 0 {
				c.inLinear = false
				c.pos = pos
				return c.classifyAt(pos)
			}
			c.inLinear = true
			c.remaining = length - 1
			c.pos = pos
			return NoValue

		case c.lo.isFinalValue(lead):
			// A final value has no outgoing edges; any further unit is a
			// mismatch.
			c.stop()
			return NoMatch

		default:
			// Intermediate value in front of more trie data: skip its
			// payload and keep looking for a node that consumes inUnit.
			vlen := c.lo.valueLength(lead)
			if pos+vlen > len(c.data) {
				c.stop()
				return NoMatch
			}
			pos += vlen
		}
	}
}

// branchNext dispatches inUnit through a branch node whose header lead
// (possibly extended by one more unit when it was 0) has already been
// consumed; pos points just past that header. Grounded on
// original_source/src/bytes_trie.rs's branch_next.
func (c *cursor[U]) branchNext(pos int, leadVal int, inUnit int32) Status {
	count := leadVal
	if count == 0 {
		if pos >= len(c.data) {
			c.stop()
			return NoMatch
		}
		count = int(c.data[pos])
		pos++
	}
	count++

	// Binary-searchable section: each sub-branch entry is one selector
	// unit plus one delta. Input less than the selector follows the
	// delta (a forward jump to the less-than half); input greater or
	// equal skips past the delta to fall through to the other half,
	// which sits immediately afterward in the data.
	for count > c.lo.maxBranchLinear {
		if pos >= len(c.data) {
			c.stop()
			return NoMatch
		}
		selector := c.data[pos]
		var ok bool
		if inUnit < int32(selector) {
			count >>= 1
			pos, ok = c.jumpByDelta(pos + 1)
		} else {
			count -= count >> 1
			pos, ok = c.skipDelta(pos + 1)
		}
		if !ok {
			c.stop()
			return NoMatch
		}
	}

	// Linear section: compare against each selector in turn; a match on
	// a non-tail entry is immediately followed by that entry's value.
	for count > 1 {
		if pos >= len(c.data) {
			c.stop()
			return NoMatch
		}
		selector := c.data[pos]
		if inUnit == int32(selector) {
			return c.branchMatched(pos + 1)
		}
		count--
		next, ok := c.skipValueEntry(pos + 1)
		if !ok {
			c.stop()
			return NoMatch
		}
		pos = next
	}

	// Tail entry: the last candidate has no stored selector delta to
	// skip past on mismatch, so it is read and compared directly.
	if pos >= len(c.data) || inUnit != int32(c.data[pos]) {
		c.stop()
		return NoMatch
	}
	pos++
	c.inLinear = false
	c.pos = pos
	return c.classifyAt(pos)
}

// branchMatched handles the value node immediately following a matched
// non-tail branch selector. pos points at that value node's lead.
func (c *cursor[U]) branchMatched(pos int) Status {
	if pos >= len(c.data) {
		c.stop()
		return NoMatch
	}
	lead := c.data[pos]
	if c.lo.isFinalValue(lead) {
		c.inLinear = false
		c.pos = pos
		return FinalValue
	}

	// Not final: the same compact integer encoding is reused here as a
	// forward jump delta rather than a value (spec.md §4.2).
	vlen := c.lo.valueLength(lead)
	if pos+1+vlen > len(c.data) {
		c.stop()
		return NoMatch
	}
	payload := c.data[pos+1 : pos+1+vlen]
	delta := c.lo.rawValue(lead, payload)
	newPos := pos + 1 + vlen + delta

	c.inLinear = false
	c.pos = newPos
	return c.classifyAt(newPos)
}

// jumpByDelta reads a delta at pos and returns the absolute position it
// points to (the delta's own width plus the decoded offset).
func (c *cursor[U]) jumpByDelta(pos int) (int, bool) {
	if pos >= len(c.data) {
		return 0, false
	}
	lead := c.data[pos]
	dlen := c.lo.deltaLength(lead)
	if pos+1+dlen > len(c.data) {
		return 0, false
	}
	payload := c.data[pos+1 : pos+1+dlen]
	delta := c.lo.rawDelta(lead, payload)
	return pos + 1 + dlen + delta, true
}

// skipDelta reads a delta at pos and returns the position immediately
// after it, without following it.
func (c *cursor[U]) skipDelta(pos int) (int, bool) {
	if pos >= len(c.data) {
		return 0, false
	}
	lead := c.data[pos]
	dlen := c.lo.deltaLength(lead)
	if pos+1+dlen > len(c.data) {
		return 0, false
	}
	return pos + 1 + dlen, true
}

// skipValueEntry reads a value node at pos and returns the position
// immediately after it, without interpreting it.
func (c *cursor[U]) skipValueEntry(pos int) (int, bool) {
	if pos >= len(c.data) {
		return 0, false
	}
	lead := c.data[pos]
	vlen := c.lo.valueLength(lead)
	if pos+1+vlen > len(c.data) {
		return 0, false
	}
	return pos + 1 + vlen, true
}

// value decodes the integer payload of the value node the cursor is
// currently parked on. Callers should only trust the result when the
// most recent first/next/current call returned Intermediate or
// FinalValue.
func (c *cursor[U]) value() (int, bool) {
	if c.stopped || c.inLinear {
		return 0, false
	}
	pos := c.pos
	if pos < 0 || pos >= len(c.data) {
		return 0, false
	}
	lead := c.data[pos]
	if int(lead) < c.lo.minValueLead {
		return 0, false
	}
	vlen := c.lo.valueLength(lead)
	if pos+1+vlen > len(c.data) {
		return 0, false
	}
	payload := c.data[pos+1 : pos+1+vlen]
	return c.lo.rawValue(lead, payload), true
}
