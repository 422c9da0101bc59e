package dicttrie

import "encoding/binary"

// headerSize is the size in bytes of the opaque ICU preamble that
// precedes the indices region (spec.md §3, "ICU preamble").
const headerSize = 0x90

// indicesSize is the size in bytes of the indices region that follows
// the preamble: trie_offset, three reserved words, trie_type, transform,
// a unit-order word, and one more reserved word (8 big-endian uint32
// fields, 32 bytes).
const indicesSize = 0x20

// TrieType identifies which of the two compact encodings a dictionary
// blob's trie payload uses.
type TrieType uint8

const (
	// TrieTypeBytes selects the 8-bit-unit encoding (BytesTrieBuilder
	// output).
	TrieTypeBytes TrieType = 0
	// TrieTypeUChars selects the 16-bit-unit encoding (UCharsTrieBuilder
	// output).
	TrieTypeUChars TrieType = 1

	trieTypeMask = 0x7
)

// TransformKind distinguishes the two ways a 16-bit input code unit is
// mapped onto the unit alphabet the trie was built over.
type TransformKind uint8

const (
	// TransformIdentity leaves the input code unit unchanged; used by
	// uchar-trie dictionaries.
	TransformIdentity TransformKind = 0
	// TransformOffset subtracts a fixed base from the input code unit,
	// with the two Khmer/Lao-style joiners (ZWNJ/ZWJ) special-cased;
	// used by byte-trie dictionaries.
	TransformOffset TransformKind = 1

	transformTypeShift = 24
	transformTypeMask  = 0x7F << transformTypeShift
	transformBaseMask  = 0x1F_FFFF
)

// UnitOrder selects the byte order the uchar-trie flavour's 16-bit trie
// units are stored in. Byte-trie payloads are single bytes and are
// unaffected by it.
type UnitOrder uint8

const (
	// UnitOrderBig is ICU's native on-disk order; no swap is performed.
	UnitOrderBig UnitOrder = 0
	// UnitOrderLittle marks a blob produced on a little-endian host
	// (spec.md §6's "assume the blob is already in host order" allowance,
	// taken literally: a blob that isn't in the reader's host order
	// carries a flag saying so instead).
	UnitOrderLittle UnitOrder = 1

	unitOrderMask = 0x1
)

// byteOrder returns the encoding/binary.ByteOrder matching o.
func (o UnitOrder) byteOrder() binary.ByteOrder {
	if o == UnitOrderLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Transform describes how to map a 16-bit input code unit to the unit
// alphabet a trie cursor understands, per spec.md §3/§4.1.
type Transform struct {
	Kind TransformKind
	// Base is the offset_base subtracted from input code units for
	// TransformOffset; meaningless for TransformIdentity.
	Base uint32
}

// zwnj and zwj are the script-specific joiners special-cased by the
// offset transform regardless of offset_base.
const (
	zwnj rune = 0x200C
	zwj  rune = 0x200D
)

// Apply maps an input code unit c to the unit alphabet understood by the
// trie cursor. It returns -1 if c cannot be represented (an
// "untransformable" unit, per spec.md §4.1/§7) — callers feed -1 straight
// to the cursor, which reports NoMatch without special-casing it.
func (tr Transform) Apply(c uint16) int32 {
	if tr.Kind == TransformIdentity {
		return int32(c)
	}
	switch rune(c) {
	case zwnj:
		return 0xFE
	case zwj:
		return 0xFF
	default:
		delta := int32(c) - int32(tr.Base)
		if delta < 0 || delta > 0xFD {
			return -1
		}
		return delta
	}
}

// Header holds the fields read from a dictionary blob's indices region
// (spec.md §3). TrieOffset is relative to the indices region; the trie
// payload itself starts at headerSize+TrieOffset.
type Header struct {
	TrieOffset int64
	Type       TrieType
	Transform  Transform
	// UnitOrder selects the trie payload's 16-bit unit byte order for
	// TrieTypeUChars blobs (spec.md §6).
	UnitOrder UnitOrder
}

// Blob is a parsed, read-only ICU dictionary file. It owns no memory of
// its own beyond the Header — the underlying byte slice is owned by the
// caller and must outlive every cursor or Iterator built from this Blob,
// per spec.md §5.
type Blob struct {
	data   []byte
	Header Header
}

// Open validates and parses a dictionary blob's header (spec.md §4.1).
// It does not validate the trie payload itself; malformed node data is
// only discovered lazily, during traversal, and surfaces as NoMatch per
// spec.md §7.
func Open(data []byte) (*Blob, error) {
	if len(data) < headerSize+indicesSize {
		return nil, ErrTruncatedBlob
	}
	indices := data[headerSize : headerSize+indicesSize]

	// Field layout (spec.md §3, cross-checked against
	// original_source/src/dictionary_iter.rs's TrieHeader struct):
	//   [0:4)   trie_offset
	//   [4:16)  reserved x3 (includes a total_size word we don't use)
	//   [16:20) trie_type
	//   [20:24) transform
	//   [24:28) unit_order (low bit only; rest reserved)
	//   [28:32) reserved x1
	trieOffset := int64(binary.BigEndian.Uint32(indices[0:4]))
	rawType := binary.BigEndian.Uint32(indices[16:20])

	typ := TrieType(rawType & trieTypeMask)
	if typ != TrieTypeBytes && typ != TrieTypeUChars {
		return nil, ErrUnknownTrieType
	}

	if trieOffset < 0 || headerSize+trieOffset >= int64(len(data)) {
		return nil, ErrMalformedBlob
	}

	transformWord := binary.BigEndian.Uint32(indices[20:24])
	tr := Transform{}
	if (transformWord & transformTypeMask) == (uint32(TransformOffset) << transformTypeShift) {
		tr.Kind = TransformOffset
		tr.Base = transformWord & transformBaseMask
	} else {
		tr.Kind = TransformIdentity
	}

	order := UnitOrderBig
	if binary.BigEndian.Uint32(indices[24:28])&unitOrderMask != 0 {
		order = UnitOrderLittle
	}

	return &Blob{
		data: data,
		Header: Header{
			TrieOffset: trieOffset,
			Type:       typ,
			Transform:  tr,
			UnitOrder:  order,
		},
	}, nil
}

// trieRoot returns the absolute byte offset of the trie payload.
func (b *Blob) trieRoot() int {
	return headerSize + int(b.Header.TrieOffset)
}

// Bytes returns the underlying blob. Callers must not mutate it while a
// cursor or Iterator built from this Blob is in use.
func (b *Blob) Bytes() []byte {
	return b.data
}
