package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the nested form of one tree node. Absent children are nil and
// serialize as JSON null rather than being omitted.
type Record struct {
	Key   string  `json:"key"`
	Color string  `json:"color"`
	Left  *Record `json:"left"`
	Right *Record `json:"right"`
}

// RecordOf converts src to nested records. It returns nil for a nil or
// empty src. The walk is iterative, so depth is bounded by memory only;
// a node reachable twice appears once.
func RecordOf(src Source) *Record {
	if src == nil || src.Root() == None {
		return nil
	}

	type frame struct {
		id   ID
		slot **Record
	}
	var root *Record
	visited := make(map[ID]bool)
	stack := []frame{{id: src.Root(), slot: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.id] {
			continue
		}
		visited[f.id] = true

		rec := &Record{Key: src.Label(f.id), Color: src.Color(f.id)}
		*f.slot = rec
		if r := src.Right(f.id); r != None {
			stack = append(stack, frame{id: r, slot: &rec.Right})
		}
		if l := src.Left(f.id); l != None {
			stack = append(stack, frame{id: l, slot: &rec.Left})
		}
	}
	return root
}

// WriteRecord writes rec as indented JSON followed by a newline.
// A nil rec is written as null.
func WriteRecord(w io.Writer, rec *Record, opts ...Option) error {
	o := buildOptions(opts)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", o.Indent)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("export: write record: %w", err)
	}
	return nil
}

// ReadRecord decodes one record tree written by WriteRecord. A JSON null
// decodes to a nil *Record and no error.
func ReadRecord(r io.Reader) (*Record, error) {
	var rec *Record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("export: read record: %w", err)
	}
	return rec, nil
}
