package dicttrie

import (
	"encoding/binary"
	"fmt"
)

func Example() {
	blob := exampleBlob()
	it := NewIterator(blob, []uint16{1, 2, 3})
	for {
		end, ok := it.Advance()
		if !ok {
			break
		}
		fmt.Println(end)
	}
	// Output:
	// 2
}

// exampleBlob builds a tiny in-memory dictionary blob for doc examples;
// real callers load one from a file with Open instead.
func exampleBlob() *Blob {
	data := make([]byte, headerSize+indicesSize+len(dictPayload))
	copy(data[headerSize+indicesSize:], dictPayload)
	// trie_offset is relative to the indices region, so the payload that
	// follows it sits at indicesSize. trie_type (bytes) and transform
	// (identity) keep their zero values, which is what this example needs.
	binary.BigEndian.PutUint32(data[headerSize:], indicesSize)
	blob, err := Open(data)
	if err != nil {
		panic(err)
	}
	return blob
}
