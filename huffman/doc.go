// Package huffman builds minimum-redundancy prefix codes from a frequency table.
//
// What:
//
//   - BuildTree: repeatedly merges the two least frequent candidates, held in
//     a binary min-heap, until a single root remains.
//   - BuildCodes: walks the finished tree with an explicit stack, assigning
//     "0" on every left descent and "1" on every right descent.
//   - Encode/Decode and Encoder/Decoder: turn a token sequence into bits and
//     back, either as a "0101" string or bit-packed through icza/bitio.
//
// Determinism:
//
//	Candidates are ordered by (frequency, sequence). Leaves take their
//	sequence from the table's first-appearance rank; every merged node takes
//	the next sequence number in creation order. Equal-frequency leaves are
//	therefore extracted in input order, and a merged node is extracted only
//	after all leaves and older merged nodes of the same frequency. The first
//	node popped in a step becomes the left child.
//
// Edge cases:
//
//   - An empty table is rejected with ErrEmptyInput.
//   - A single-symbol table yields a lone leaf whose code is "0".
//
// Complexity:
//
//   - BuildTree:  Time O(k log k), Memory O(k) for k distinct symbols
//   - BuildCodes: Time O(k·d), Memory O(k·d) where d is the tree depth
//
// Errors:
//
//   - ErrEmptyInput        frequency table has no entries
//   - ErrFrequencyOverflow a merged frequency exceeds math.MaxUint64
//   - ErrNilTree           BuildCodes called with a nil root
//   - ErrUnknownSymbol     token has no code
//   - ErrInvalidBit        bit-string contains something other than '0'/'1'
//   - ErrUnknownCode       bits do not lead to any codeword
//   - ErrTruncated         input ended in the middle of a codeword
//   - ErrNotPrefixFree     a code map handed to a decoder is ambiguous
package huffman
