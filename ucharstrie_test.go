package dicttrie

import "testing"

// ucharLinearThenFinal encodes the single key "A" (one 16-bit unit) ->
// 7 as a one-unit linear-match node followed by a final value node:
//
//	0x0030  linear-match lead: length = 0x30-0x30 = 0 -> 1 unit total
//	0x0041  "A"
//	0x8047  final value node: top bit set (final), selector = 0x47,
//	        value = 0x47-0x40 = 7
var ucharLinearThenFinal = []uint16{0x0030, 0x0041, 0x8047}

func TestUCharCursorLinearMatch(t *testing.T) {
	c := newUCharCursor(ucharLinearThenFinal, 0)
	if got := c.First(0x41); got != FinalValue {
		t.Fatalf("First(0x41) = %v, want FinalValue", got)
	}
	v, ok := c.Value()
	if !ok || v != 7 {
		t.Fatalf("Value() = (%d, %v), want (7, true)", v, ok)
	}
}

func TestUCharCursorMismatch(t *testing.T) {
	c := newUCharCursor(ucharLinearThenFinal, 0)
	if got := c.First(0x42); got != NoMatch {
		t.Fatalf("First(0x42) = %v, want NoMatch", got)
	}
}

func TestDecodeUnits16BigEndian(t *testing.T) {
	b := []byte{0x80, 0x47, 0x00, 0x41}
	units := decodeUnits16(b, UnitOrderBig)
	if len(units) != 2 || units[0] != 0x8047 || units[1] != 0x0041 {
		t.Fatalf("decodeUnits16 = %x, want [8047 0041]", units)
	}
}

func TestDecodeUnits16LittleEndian(t *testing.T) {
	b := []byte{0x47, 0x80, 0x41, 0x00}
	units := decodeUnits16(b, UnitOrderLittle)
	if len(units) != 2 || units[0] != 0x8047 || units[1] != 0x0041 {
		t.Fatalf("decodeUnits16 = %x, want [8047 0041]", units)
	}
}
