package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// palette maps a Source color name to Graphviz fill and font colors.
var palette = map[string][2]string{
	"red":         {"red", "white"},
	"black":       {"black", "white"},
	ColorLeaf:     {"palegreen", "black"},
	ColorInternal: {"lightgray", "black"},
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// WriteDOT writes src as a Graphviz digraph. Vertices are named n<ID> and
// labeled by Source.Label, so equal keys stay distinct vertices. Unknown
// color names fall back to a white fill.
//
// Vertices are emitted in preorder, each followed by its outgoing edges,
// left before right. An empty tree yields a graph with only the node
// defaults. Labels are escaped for DOT quoted strings.
//
// Errors: ErrNilSource for a nil src, otherwise the first write error of w.
//
// Complexity: O(n) time and O(n) space for the visited set.
func WriteDOT(w io.Writer, src Source, opts ...Option) error {
	if src == nil {
		return ErrNilSource
	}
	o := buildOptions(opts)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotID(o.GraphName))
	bw.WriteString("  node [shape=circle, style=filled, fontname=\"Arial\"];\n")

	visited := make(map[ID]bool)
	var stack []ID
	if root := src.Root(); root != None {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		fill, font := "white", "black"
		if c, ok := palette[src.Color(id)]; ok {
			fill, font = c[0], c[1]
		}
		fmt.Fprintf(bw, "  n%d [label=\"%s\", fillcolor=%q, fontcolor=%q];\n",
			id, dotEscaper.Replace(src.Label(id)), fill, font)

		l, r := src.Left(id), src.Right(id)
		for i, c := range [2]ID{l, r} {
			if c == None {
				continue
			}
			if o.EdgeLabels {
				fmt.Fprintf(bw, "  n%d -> n%d [label=\"%d\"];\n", id, c, i)
			} else {
				fmt.Fprintf(bw, "  n%d -> n%d;\n", id, c)
			}
		}
		if r != None {
			stack = append(stack, r)
		}
		if l != None {
			stack = append(stack, l)
		}
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// dotID quotes name unless it is a plain identifier.
func dotID(name string) string {
	plain := name != ""
	for i, r := range name {
		isLetter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !(isDigit && i > 0) {
			plain = false
			break
		}
	}
	if plain {
		return name
	}
	return `"` + dotEscaper.Replace(name) + `"`
}
