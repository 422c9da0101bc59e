// Package dicttrie decodes ICU-format compact dictionary tries and uses
// them to greedily segment scriptio-continua text — Khmer, Lao, and CJK,
// among others — into dictionary words.
//
// # Overview
//
// Several writing systems do not mark word boundaries with spaces.
// Breaking such text into words requires a dictionary: a trie mapping
// known words to values, searched greedily for the longest match at
// each position. This package decodes the two compact binary trie
// encodings ICU dictionary files are built from (an 8-bit-unit and a
// 16-bit-unit flavour sharing one node grammar) and drives a
// longest-match segmentation loop over them.
//
// # When to Use This Package
//
// Use it when segmenting already-script-identified text that carries no
// whitespace between words:
//   - Khmer, Lao, and Thai text, via a byte-trie dictionary with an
//     offset transform
//   - CJK text, via a uchar-trie dictionary with the identity transform
//
// # When NOT to Use This Package
//
// This package does not build dictionaries — it only reads ones
// produced elsewhere (e.g. by ICU's BytesTrieBuilder/UCharsTrieBuilder).
// It also does not perform sentence- or line-breaking, script
// detection, or general Unicode text segmentation.
//
// # Basic Usage
//
//	blob, err := dicttrie.Open(dictBytes)
//	if err != nil {
//	    // malformed dictionary file
//	}
//	it := dicttrie.NewIterator(blob, codeUnits)
//	for {
//	    end, ok := it.Advance()
//	    if !ok {
//	        break
//	    }
//	    // codeUnits[start:end] is one word
//	}
//
// Segmenting many independent buffers against the same dictionary
// concurrently:
//
//	results, err := dicttrie.SegmentAll(blob, buffers)
//
// # Performance Characteristics
//
// Opening a blob only validates its header; it does no allocation
// beyond the returned Blob and does not copy the input. Building a
// byte-trie Cursor is O(1); building a 16-bit-flavour Cursor allocates
// and fills a unit slice covering the whole trie payload. NewIterator
// transforms the whole input into a new slice up front, and every
// Advance call builds a fresh Cursor. Matching
// is O(key length) per lookup with no backtracking: every unit read
// from the trie advances the cursor exactly once.
package dicttrie
