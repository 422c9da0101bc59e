package dicttrie

// unit is the underlying storage type for one trie node lead/payload
// unit: uint8 for the byte-trie flavour, uint16 for the uchar-trie
// flavour. Both flavours share one decode grammar (branch / linear-match
// / value nodes); only the numeric thresholds and the final-value bit
// test differ, per spec.md Design Note 1 and §3's uchar paragraph.
type unit interface {
	~uint8 | ~uint16
}

// layout carries the per-flavour thresholds and decode functions that
// parameterise the shared cursor engine in cursor.go. One instance
// exists per flavour (see bytestrie.go, ucharstrie.go); neither holds
// any traversal state of its own.
type layout[U unit] struct {
	// maxBranchLinear is the branch length at or below which a branch
	// node is scanned linearly instead of binary-searched (5 for both
	// flavours, per spec.md §3).
	maxBranchLinear int

	// minLinearMatch and maxLinearMatchLength bound the lead value of a
	// linear-match node: leads in [minLinearMatch, minLinearMatch+
	// maxLinearMatchLength) encode a match of 1..maxLinearMatchLength
	// units. Leads below minLinearMatch are branch nodes.
	minLinearMatch       int
	maxLinearMatchLength int

	// minValueLead is the smallest lead value that encodes a value node.
	minValueLead int

	// isFinalValue reports whether a value node's lead unit marks a
	// final (no further unit can extend the match) rather than
	// intermediate value. Byte-trie tests bit 0; uchar-trie tests the
	// top bit of the 16-bit lead (spec.md §3).
	isFinalValue func(lead U) bool

	// valueLength returns the number of payload units following a value
	// node's lead (0..4), per spec.md §3's value-length table.
	valueLength func(lead U) int

	// rawValue decodes a value node's integer payload given its lead and
	// trailing payload units (len(payload) == valueLength(lead)). Also
	// used to decode a non-final branch-leaf value as a jump delta, per
	// spec.md §4.2's branch_next algorithm — the same compact integer
	// encoding backs both uses.
	rawValue func(lead U, payload []U) int

	// deltaLength returns the number of units following a delta's lead
	// unit (0..4), per spec.md §3's delta-length table.
	deltaLength func(lead U) int

	// rawDelta decodes a jump delta given its lead and trailing payload
	// units (len(payload) == deltaLength(lead)).
	rawDelta func(lead U, payload []U) int
}

// newLayout builds a layout for a given flavour's thresholds.
//
// selectorOf extracts the bits of a value-node lead that select which of
// the five value buckets it falls into and, for the one-unit bucket,
// the value itself: the byte flavour's final-value flag sits at bit 0,
// so its selector is lead>>1; the uchar flavour's sits at bit 15
// instead, so its selector is the lead with that bit masked off rather
// than shifted out (spec.md §3's uchar paragraph). base is the selector
// value of the smallest one-unit-bucket lead, i.e. the value a selector
// of exactly base decodes to 0.
//
// The value/delta bucket *shape* (how many selector values each of the
// five buckets spans) is shared between both flavours — spec.md §3
// gives it once, for the byte flavour, and says the uchar flavour
// "mirrors §3 with 16-bit bucket boundaries" without restating the
// gaps. We take that literally: the bucket gaps (0x41, 0x1B, 0x12, one,
// one) are reused unchanged for both flavours. For the byte flavour
// (selector = lead>>1, base = minValueLead/2 = 0x10) this reproduces
// spec.md §3's literal thresholds (0x51, 0x6C, 0x7E, 0x7F) exactly. The
// delta-lead bucket boundaries (0xBF/0xC0/0xEF/0xF0/0xFD/0xFE/0xFF) are
// likewise reused unscaled for both flavours.
func newLayout[U unit](maxBranchLinear, minLinearMatch, maxLinearMatchLength, minValueLead, base int, selectorOf func(U) int, isFinalValue func(U) bool) layout[U] {
	oneUnitLimit := base + 0x41    // one-unit bucket: v < oneUnitLimit
	twoUnitLimit := oneUnitLimit + 0x1B
	threeUnitLimit := twoUnitLimit + 0x12
	fourUnitLead := threeUnitLimit // v == fourUnitLead: 4-unit total
	// v == fourUnitLead+1: 5-unit total, handled by the default cases below

	return layout[U]{
		maxBranchLinear:      maxBranchLinear,
		minLinearMatch:       minLinearMatch,
		maxLinearMatchLength: maxLinearMatchLength,
		minValueLead:         minValueLead,
		isFinalValue:         isFinalValue,

		valueLength: func(lead U) int {
			v := selectorOf(lead)
			switch {
			case v < oneUnitLimit:
				return 0
			case v < twoUnitLimit:
				return 1
			case v < threeUnitLimit:
				return 2
			case v == fourUnitLead:
				return 3
			default: // v == fourUnitLead+1
				return 4
			}
		},

		rawValue: func(lead U, payload []U) int {
			v := selectorOf(lead)
			switch {
			case v < oneUnitLimit:
				return v - base
			case v < twoUnitLimit:
				return (v-oneUnitLimit)<<8 | int(payload[0])
			case v < threeUnitLimit:
				return (v-twoUnitLimit)<<16 | int(payload[0])<<8 | int(payload[1])
			case v == fourUnitLead:
				return int(payload[0])<<16 | int(payload[1])<<8 | int(payload[2])
			default: // v == fourUnitLead+1
				return int(payload[0])<<24 | int(payload[1])<<16 | int(payload[2])<<8 | int(payload[3])
			}
		},

		deltaLength: func(lead U) int {
			switch {
			case lead <= 0xBF:
				return 0
			case lead <= 0xEF:
				return 1
			case lead <= 0xFD:
				return 2
			case int(lead) == 0xFE:
				return 3
			default: // 0xFF
				return 4
			}
		},

		rawDelta: func(lead U, payload []U) int {
			switch {
			case lead <= 0xBF:
				return int(lead)
			case lead <= 0xEF:
				return (int(lead)-0xC0)<<8 | int(payload[0])
			case lead <= 0xFD:
				return (int(lead)-0xF0)<<16 | int(payload[0])<<8 | int(payload[1])
			case int(lead) == 0xFE:
				return int(payload[0])<<16 | int(payload[1])<<8 | int(payload[2])
			default: // 0xFF
				return int(payload[0])<<24 | int(payload[1])<<16 | int(payload[2])<<8 | int(payload[3])
			}
		},
	}
}
