package export_test

import (
	"os"

	"github.com/katalvlaran/symindex/export"
	"github.com/katalvlaran/symindex/freq"
	"github.com/katalvlaran/symindex/huffman"
	"github.com/katalvlaran/symindex/rbtree"
)

func ExampleOutline() {
	tr := rbtree.New[string]()
	for _, tok := range []string{"GT3_17", "LE3_16", "GT3_17", "GT3_15"} {
		tr.Insert(tok)
	}
	_ = export.Outline(os.Stdout, export.FromRBTree(tr))
	// Output:
	// └─ GT3_17 (black)
	//    ├─ GT3_17 (black)
	//    │  ├─ GT3_15 (red)
	//    └─ LE3_16 (black)
}

func ExampleWriteDOT() {
	root, _ := huffman.BuildTree(freq.Count([]string{"A", "B", "A"}))
	_ = export.WriteDOT(os.Stdout, export.FromHuffman(root),
		export.WithGraphName("Huffman"), export.WithEdgeLabels())
	// Output:
	// digraph Huffman {
	//   node [shape=circle, style=filled, fontname="Arial"];
	//   n0 [label="3", fillcolor="lightgray", fontcolor="black"];
	//   n0 -> n1 [label="0"];
	//   n0 -> n2 [label="1"];
	//   n1 [label="B", fillcolor="palegreen", fontcolor="black"];
	//   n2 [label="A", fillcolor="palegreen", fontcolor="black"];
	// }
}

func ExampleWriteCodes() {
	_ = export.WriteCodes(os.Stdout, huffman.CodeMap{"LE3_16": "11", "GT3_17": "0", "GT3_18": "10"})
	// Output:
	// {
	//   "GT3_17": "0",
	//   "GT3_18": "10",
	//   "LE3_16": "11"
	// }
}
