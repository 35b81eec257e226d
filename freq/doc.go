// Package freq counts symbol occurrences in a token sequence.
//
// A Table maps each distinct symbol to the number of times it occurred and
// remembers the order in which symbols first appeared. That order is the
// rank consumed by huffman.BuildTree as its tie-break, so two tables built
// from the same sequence always yield the same code assignment.
//
// Complexity:
//
//   - Add:     O(1) amortized
//   - Count:   O(n) for n tokens
//   - Entries: O(k) for k distinct symbols
//
// Errors:
//
//   - ErrLengthMismatch  symbols and counts differ in length (FromCounts)
//   - ErrDuplicateSymbol a symbol is listed twice (FromCounts)
//   - ErrCountOverflow   a single symbol's count would exceed uint64 (AddN)
//
// Per-symbol counts never wrap. Total saturates at math.MaxUint64 rather than
// wrapping, since it only summarizes the table.
package freq
