package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/symindex/freq"
	"github.com/katalvlaran/symindex/huffman"
	"github.com/katalvlaran/symindex/ingest"
	"github.com/katalvlaran/symindex/rbtree"
)

// index is the finished, read-only result of one run.
type index struct {
	list   *ingest.RecordList
	tokens []string
	table  *freq.Table
	root   *huffman.Node
	codes  huffman.CodeMap
	tree   *rbtree.Tree[string]
}

// run loads the input, builds both indexes, writes the artifacts and prints
// a summary to stdout.
func run(ctx context.Context, a args, stdout io.Writer) error {
	f, err := os.Open(a.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	list, header, err := ingest.LoadCSV(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", a.Input, err)
	}
	tracer().Infof("loaded %s: %d rows, columns %v", a.Input, list.Len(), header)

	tokens, _, err := ingest.DeriveTokens(list, header, a.Target, a.columns()...)
	if err != nil {
		return fmt.Errorf("derive %s: %w", a.Target, err)
	}

	idx, err := buildIndex(list, tokens)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.Out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	paths, err := writeArtifacts(ctx, a.Out, ingest.NormalizeColumn(a.Target), idx)
	if err != nil {
		return err
	}
	for _, p := range paths {
		tracer().Infof("wrote %s", p)
	}

	if a.Render {
		render(ctx, a.Out)
	}
	return report(stdout, a, idx)
}

// buildIndex runs both builders over tokens in order.
func buildIndex(list *ingest.RecordList, tokens []string) (*index, error) {
	ht := tracing.Select("symindex.huffman")
	table := freq.Count(tokens)
	root, err := huffman.BuildTree(table, huffman.WithOnMerge(func(s huffman.MergeStep) {
		ht.Debugf("merge %d: %s + %s -> %d", s.Step, nodeLabel(s.Left), nodeLabel(s.Right), s.Merged.Freq())
	}))
	if err != nil {
		return nil, fmt.Errorf("huffman: %w", err)
	}
	codes, err := huffman.BuildCodes(root)
	if err != nil {
		return nil, fmt.Errorf("huffman codes: %w", err)
	}

	rt := tracing.Select("symindex.rbtree")
	tree := rbtree.New[string](
		rbtree.WithCapacity(len(tokens)),
		rbtree.WithOnRotate(func(r rbtree.Rotation) {
			rt.Debugf("rotate %s at node %d, node %d moves up", r.Dir, r.Pivot, r.Child)
		}),
	)
	for _, tok := range tokens {
		tree.Insert(tok)
	}
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("red-black tree: %w", err)
	}

	return &index{list: list, tokens: tokens, table: table, root: root, codes: codes, tree: tree}, nil
}

func nodeLabel(n *huffman.Node) string {
	if sym, ok := n.Symbol(); ok {
		return fmt.Sprintf("%q(%d)", sym, n.Freq())
	}
	return fmt.Sprintf("(%d)", n.Freq())
}

// report prints the code table and summary counts.
func report(w io.Writer, a args, idx *index) error {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Huffman codes (token => code):\n")
	for _, sym := range idx.codes.Symbols() {
		p.Fprintf(w, "%s => %s\n", sym, idx.codes[sym])
	}

	if a.Outline {
		p.Fprintf(w, "\nRed-black tree:\n")
		if err := printOutline(w, idx.tree); err != nil {
			return err
		}
	}

	bits, err := idx.codes.WeightedLength(idx.table)
	if err != nil {
		return err
	}
	p.Fprintf(w, "\nrows: %d\ntokens: %d distinct of %d\n", idx.list.Len(), idx.table.Len(), len(idx.tokens))
	p.Fprintf(w, "huffman: %d bits, longest code %d\n", bits, idx.codes.MaxLen())
	p.Fprintf(w, "red-black tree: height %d, black-height %d\n", idx.tree.Height(), idx.tree.BlackHeight())
	return nil
}
