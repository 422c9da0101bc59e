package dicttrie

import "errors"

// Errors returned by Open when a dictionary blob is malformed. An
// untransformable input unit is not an error — see Transform — it is
// reported to the cursor as the -1 sentinel, which simply yields NoMatch.
var (
	// ErrTruncatedBlob means the blob is shorter than the fixed ICU
	// header (0xB0 bytes), so the indices region cannot be read at all.
	ErrTruncatedBlob = errors.New("dicttrie: blob shorter than header")

	// ErrUnknownTrieType means the low 3 bits of the trie_type field are
	// neither 0 (byte-trie) nor 1 (uchar-trie).
	ErrUnknownTrieType = errors.New("dicttrie: unknown trie type")

	// ErrMalformedBlob means trie_offset places the trie payload outside
	// the blob. A read during traversal that runs past the end of the
	// blob is not reported as an error: the cursor stops with NoMatch.
	ErrMalformedBlob = errors.New("dicttrie: malformed dictionary blob")
)
