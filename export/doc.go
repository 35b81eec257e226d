// Package export renders finished trees for people and for other tools.
//
// Both tree kinds in this module are exposed through a single read-only
// Source view, so every exporter works on either of them:
//
//   - FromRBTree wraps an *rbtree.Tree; labels are keys, colors are "red"/"black".
//   - FromHuffman wraps a *huffman.Node; leaves are labeled by symbol,
//     internal nodes by frequency, colors are "leaf"/"internal".
//   - FromRecord wraps a *Record read back from JSON.
//
// Exporters:
//
//   - Outline writes a preorder text outline with box-drawing connectors.
//   - RecordOf/WriteRecord produce nested {key, color, left, right} JSON
//     with absent children written as null; ReadRecord reverses it.
//   - WriteDOT writes a Graphviz digraph, one vertex per node and one edge
//     per present child link.
//   - WriteCodes writes a symbol→code map as a flat JSON object.
//
// All traversals are iterative and keep an identity-based visited set, so a
// corrupted structure with shared or cyclic links still terminates; a node
// reached twice is skipped silently.
package export
