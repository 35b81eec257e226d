package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/symindex/export"
	"github.com/katalvlaran/symindex/huffman"
	"github.com/katalvlaran/symindex/ingest"
	"github.com/katalvlaran/symindex/rbtree"
)

// Artifact file names. The code map, column CSV and token stream are named
// after the target column.
const (
	rbStructureFile = "rb_tree_structure.json"
	rbDotFile       = "rb_tree_visual.dot"
	huffmanDotFile  = "huffman_tree.dot"
)

func codesFile(target string) string  { return "huffman_" + target + ".json" }
func columnFile(target string) string { return target + ".csv" }
func streamFile(target string) string { return target + ".huff" }

type artifact struct {
	name  string
	write func(io.Writer) error
}

// writeArtifacts writes every artifact of idx into dir concurrently and
// returns the written paths in a fixed order. idx is only read.
func writeArtifacts(ctx context.Context, dir, target string, idx *index) ([]string, error) {
	rb := export.FromRBTree(idx.tree)
	hf := export.FromHuffman(idx.root)

	jobs := []artifact{
		{codesFile(target), func(w io.Writer) error {
			return export.WriteCodes(w, idx.codes)
		}},
		{rbStructureFile, func(w io.Writer) error {
			return export.WriteRecord(w, export.RecordOf(rb))
		}},
		{rbDotFile, func(w io.Writer) error {
			return export.WriteDOT(w, rb, export.WithGraphName("RBTree"))
		}},
		{huffmanDotFile, func(w io.Writer) error {
			return export.WriteDOT(w, hf, export.WithGraphName("Huffman"), export.WithEdgeLabels())
		}},
		{columnFile(target), func(w io.Writer) error {
			return ingest.WriteColumnCSV(w, idx.list, target)
		}},
		{streamFile(target), func(w io.Writer) error {
			return huffman.WriteStream(w, idx.codes, idx.tokens)
		}},
	}

	g, ctx := errgroup.WithContext(ctx)
	paths := make([]string, len(jobs))
	for i, job := range jobs {
		path := filepath.Join(dir, job.name)
		paths[i] = path
		write := job.write
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(path, write)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// writeFile creates path and fills it through a buffered writer.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// render turns both DOT files into PNGs with Graphviz. A missing or failing
// dot binary is reported and otherwise ignored.
func render(ctx context.Context, dir string) {
	dot, err := exec.LookPath("dot")
	if err != nil {
		tracer().Errorf("cannot render PNG: Graphviz dot not found in PATH")
		return
	}
	for _, name := range []string{rbDotFile, huffmanDotFile} {
		in := filepath.Join(dir, name)
		out := in[:len(in)-len(filepath.Ext(in))] + ".png"
		cmd := exec.CommandContext(ctx, dot, "-Tpng", in, "-o", out)
		if msg, err := cmd.CombinedOutput(); err != nil {
			tracer().Errorf("render %s: %v: %s", in, err, msg)
			continue
		}
		tracer().Infof("rendered %s", out)
	}
}

func printOutline(w io.Writer, tree *rbtree.Tree[string]) error {
	return export.Outline(w, export.FromRBTree(tree))
}
