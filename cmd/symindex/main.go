// Command symindex indexes one derived column of a CSV file two ways: a
// Huffman code over the token frequencies and a red-black tree over the
// tokens themselves. It writes the code map, the tree structure, Graphviz
// files for both trees, the derived column and a bit-packed token stream.
//
// Usage:
//
//	symindex [--input student-data.csv] [--out DIR] [--columns famsize,age]
//	         [--target famsize_age] [--outline] [--render] [--verbose]
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/npillmayer/schuko/tracing"
)

type args struct {
	Input   string `arg:"-i,--input" default:"student-data.csv" help:"CSV file with a header row"`
	Out     string `arg:"-o,--out" default:"." help:"directory the artifacts are written to"`
	Columns string `arg:"-c,--columns" default:"famsize,age" help:"comma-separated columns joined into each token"`
	Target  string `arg:"-t,--target" default:"famsize_age" help:"name of the derived token column"`
	Outline bool   `arg:"--outline" help:"print the red-black tree outline to stdout"`
	Render  bool   `arg:"--render" help:"render rb_tree_visual.png and huffman_tree.png with Graphviz dot"`
	Verbose bool   `arg:"-v,--verbose" help:"trace merge steps and rotations"`
}

func (args) Description() string {
	return "symindex builds a Huffman code and a red-black tree index over a derived CSV column"
}

func (a args) columns() []string {
	var out []string
	for _, c := range strings.Split(a.Columns, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func main() {
	var a args
	arg.MustParse(&a)

	level := tracing.LevelInfo
	if a.Verbose {
		level = tracing.LevelDebug
	}
	tracing.SetTraceSelector(newSelector(level, os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, a, os.Stdout); err != nil {
		tracer().Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}
