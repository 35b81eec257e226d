package export

import (
	"errors"
)

// ID identifies one node inside a Source. IDs are unique per Source.
type ID int

// None is the absent position.
const None ID = -1

// Source is a read-only binary tree view.
type Source interface {
	// Root returns the root, or None for an empty tree.
	Root() ID
	// Label returns the text shown for id.
	Label(id ID) string
	// Color returns the color name of id.
	Color(id ID) string
	// Left returns the left child of id, or None.
	Left(id ID) ID
	// Right returns the right child of id, or None.
	Right(id ID) ID
}

// ErrNilSource is returned when an exporter receives a nil Source.
var ErrNilSource = errors.New("export: source is nil")

// Option configures an exporter call.
type Option func(*ExportOptions)

// ExportOptions holds formatting settings shared by the exporters.
type ExportOptions struct {
	// Indent is the per-level JSON indent.
	Indent string

	// GraphName is the DOT digraph identifier.
	GraphName string

	// EdgeLabels labels DOT edges "0" (left) and "1" (right).
	EdgeLabels bool
}

// DefaultOptions returns two-space JSON indent, graph name "Tree" and
// unlabeled edges.
func DefaultOptions() ExportOptions {
	return ExportOptions{
		Indent:     "  ",
		GraphName:  "Tree",
		EdgeLabels: false,
	}
}

// WithIndent sets the JSON indent. An empty string produces compact output.
func WithIndent(indent string) Option {
	return func(o *ExportOptions) {
		o.Indent = indent
	}
}

// WithGraphName sets the DOT graph identifier. An empty name is ignored.
func WithGraphName(name string) Option {
	return func(o *ExportOptions) {
		if name != "" {
			o.GraphName = name
		}
	}
}

// WithEdgeLabels turns on "0"/"1" edge labels in DOT output, matching the
// bit each branch contributes to a Huffman code.
func WithEdgeLabels() Option {
	return func(o *ExportOptions) {
		o.EdgeLabels = true
	}
}

func buildOptions(opts []Option) ExportOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
