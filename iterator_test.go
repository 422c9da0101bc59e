package dicttrie

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildByteTrieBlob assembles a full dictionary blob (ICU preamble +
// indices + trie payload) around the given byte-trie payload, with an
// identity transform so test inputs can use small, readable unit
// values instead of real script code points.
func buildByteTrieBlob(t *testing.T, payload []byte) *Blob {
	t.Helper()
	data := make([]byte, headerSize+indicesSize+len(payload))
	binary.BigEndian.PutUint32(data[headerSize+0:], indicesSize) // trie_offset: payload right after the indices region
	binary.BigEndian.PutUint32(data[headerSize+16:], uint32(TrieTypeBytes))
	binary.BigEndian.PutUint32(data[headerSize+20:], uint32(TransformIdentity)<<transformTypeShift)
	copy(data[headerSize+indicesSize:], payload)

	blob, err := Open(data)
	require.NoError(t, err)
	return blob
}

// dictPayload holds one key, [1,2] -> 10, as a linear-match node
// followed by a final value node (see bytestrie_test.go's fixtures for
// the same encoding worked through by hand).
var dictPayload = []byte{0x11, 0x01, 0x02, 0x35}

func TestIteratorGreedyMatchThenEndOfStream(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)

	it := NewIterator(blob, []uint16{1, 2, 3})
	bounds := it.Boundaries()
	require.Equal(t, []int{2}, bounds)
}

func TestIteratorNoMatchIsImmediateEndOfStream(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)

	it := NewIterator(blob, []uint16{3})
	end, ok := it.Advance()
	require.False(t, ok)
	require.Equal(t, 0, end)
	require.True(t, it.Done())
	require.Empty(t, it.Boundaries())
}

func TestIteratorRunsOffEndMidMatch(t *testing.T) {
	// dictPayload's only key is the two-unit [1,2]; a lone leading 1
	// leaves the cursor parked on NoValue with no more input to resolve
	// the match, so Advance commits to the end of the buffer rather than
	// reporting end-of-stream.
	blob := buildByteTrieBlob(t, dictPayload)

	it := NewIterator(blob, []uint16{1})
	end, ok := it.Advance()
	require.True(t, ok)
	require.Equal(t, 1, end)
	require.True(t, it.Done())
}

func TestIteratorPeekStatus(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)
	it := NewIterator(blob, []uint16{1, 2, 3})

	require.Equal(t, NoMatch, it.PeekStatus())

	_, ok := it.Advance()
	require.True(t, ok)
	require.Equal(t, FinalValue, it.PeekStatus())

	_, ok = it.Advance()
	require.False(t, ok)
	require.Equal(t, NoMatch, it.PeekStatus())
}

func TestIteratorAdvanceStopsAtEnd(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)

	it := NewIterator(blob, []uint16{1, 2})
	end, ok := it.Advance()
	require.True(t, ok)
	require.Equal(t, 2, end)
	require.True(t, it.Done())

	_, ok = it.Advance()
	require.False(t, ok)
}

func TestIteratorEmptyInput(t *testing.T) {
	blob := buildByteTrieBlob(t, dictPayload)
	it := NewIterator(blob, nil)
	require.True(t, it.Done())
	_, ok := it.Advance()
	require.False(t, ok)
}
