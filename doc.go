// Package symindex indexes a stream of symbolic tokens two ways: as a
// Huffman code derived from token frequencies, and as a red-black tree that
// keeps every token in sorted order.
//
// 🚀 What is in the box?
//
//   - freq: frequency tables that remember first-appearance order
//   - huffman: heap-driven merge tree, code map, bit-packed codec
//   - rbtree: arena-backed insert-only red-black tree with validation
//   - export: text outline, nested JSON record and Graphviz DOT for both trees
//   - ingest: CSV into a doubly linked record list, token derivation
//   - cmd/symindex: batch tool that runs the whole pipeline over a CSV file
//
// ✨ Guarantees
//
//   - Deterministic: equal inputs give equal codes and equal tree shapes;
//     Huffman ties are broken by first appearance, then by merge order
//   - Iterative: code assignment and every export walk use explicit stacks,
//     so skewed trees cannot overflow the call stack
//   - Observable: merge and rotation hooks (WithOnMerge, WithOnRotate…)
//     instead of built-in printing
//
// Data flow:
//
//	CSV ─▶ ingest.LoadCSV ─▶ ingest.DeriveTokens ─▶ tokens
//	tokens ─▶ freq.Count ─▶ huffman.BuildTree ─▶ huffman.BuildCodes ─▶ export.WriteCodes
//	tokens ─▶ rbtree.Tree.Insert ─▶ export.Outline / export.RecordOf / export.WriteDOT
//
//	go install github.com/katalvlaran/symindex/cmd/symindex@latest
package symindex
