package dicttrie

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16 decodes a UTF-16 byte buffer — as read from a file or
// wire format that stores text in that encoding, independent of how the
// dictionary blob itself is byte-ordered — into the 16-bit code unit
// sequence a Transform and Iterator consume. bo selects the input's
// byte order.
func DecodeUTF16(data []byte, bo unicode.Endianness) ([]uint16, error) {
	dec := unicode.UTF16(bo, unicode.IgnoreBOM).NewDecoder()
	utf8Bytes, err := dec.Bytes(data)
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(string(utf8Bytes))), nil
}

// untransformableByte is emitted by a unitTransformer in place of any
// code unit Transform.Apply rejects as untransformable, or any value
// that does not fit the byte-trie's single-byte alphabet. It reuses the
// highest byte-trie sentinel (the same value the ZWJ special case
// produces, per spec.md §4.1) since real transformed values never reach
// it through any other path for characters the dictionary actually
// covers.
const untransformableByte = 0xFF

// unitTransformer adapts a Transform to the golang.org/x/text/transform.
// Transformer interface, letting dictionary lookups sit at the end of a
// text-processing pipeline built from x/text primitives. It consumes
// big-endian UTF-16 input two bytes per unit and emits one transformed
// byte per unit.
type unitTransformer struct {
	tr Transform
}

// NewUnitTransformer returns a transform.Transformer that applies tr to
// a big-endian UTF-16 byte stream, one code unit at a time.
func NewUnitTransformer(tr Transform) transform.Transformer {
	return &unitTransformer{tr: tr}
}

func (t *unitTransformer) Reset() {}

func (t *unitTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc+2 <= len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := uint16(src[nSrc])<<8 | uint16(src[nSrc+1])
		v := t.tr.Apply(c)
		if v < 0 || v > 0xFF {
			dst[nDst] = untransformableByte
		} else {
			dst[nDst] = byte(v)
		}
		nDst++
		nSrc += 2
	}
	if !atEOF && len(src)-nSrc > 0 {
		err = transform.ErrShortSrc
	}
	return nDst, nSrc, err
}
