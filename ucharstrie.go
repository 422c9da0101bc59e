package dicttrie

// ucharLayout implements the 16-bit-unit encoding (UCharsTrieBuilder
// output). spec.md §3's uchar paragraph pins minLinearMatch=0x0030,
// linear-match leads through 0x003F (so maxLinearMatchLength=0x10,
// matching the byte flavour), value leads from 0x0040, and a final/
// intermediate discriminator on the lead's top bit rather than bit 0.
// Because that flag sits at bit 15 instead of bit 0, the value selector
// masks it off instead of shifting it out, so base is minValueLead
// itself (unscaled) rather than minValueLead/2; the value/delta bucket
// shape is otherwise shared with the byte flavour via newLayout — see
// layout.go for why.
var ucharLayout = newLayout[uint16](5, 0x30, 0x10, 0x40, 0x40,
	func(lead uint16) int { return int(lead) &^ 0x8000 },
	func(lead uint16) bool { return lead&0x8000 != 0 },
)

type ucharCursor struct {
	c *cursor[uint16]
}

func newUCharCursor(data []uint16, root int) *ucharCursor {
	return &ucharCursor{c: newCursor[uint16](data, ucharLayout, root)}
}

func (u *ucharCursor) First(unit int32) Status { return u.c.first(unit) }
func (u *ucharCursor) Next(unit int32) Status  { return u.c.next(unit) }
func (u *ucharCursor) Current() Status         { return u.c.current() }
func (u *ucharCursor) Reset()                  { u.c.reset() }
func (u *ucharCursor) Value() (int, bool)      { return u.c.value() }

// decodeUnits16 reinterprets a byte slice as the 16-bit unit sequence a
// uchar-trie payload is made of, in the given order. Dictionary blobs
// store their header fields big-endian throughout (spec.md §3), but the
// trie payload itself may have been produced on a little-endian host
// (spec.md §6, Header.UnitOrder). A trailing odd byte, which a
// well-formed blob never has, is dropped rather than panicking.
func decodeUnits16(b []byte, order UnitOrder) []uint16 {
	bo := order.byteOrder()
	n := len(b) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = bo.Uint16(b[2*i : 2*i+2])
	}
	return units
}
