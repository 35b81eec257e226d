package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("ingest: missing header row")

	// ErrRowWidth is returned when a row's field count differs from the header.
	ErrRowWidth = errors.New("ingest: row width differs from header")

	// ErrMissingColumn is returned when a requested column is not in the header.
	ErrMissingColumn = errors.New("ingest: column not found")

	// ErrDuplicateColumn is returned when two header names normalize to the same key.
	ErrDuplicateColumn = errors.New("ingest: duplicate column")
)

// Option configures LoadCSV.
type Option func(*LoadOptions)

// LoadOptions holds CSV parsing settings.
type LoadOptions struct {
	// Comma is the field delimiter.
	Comma rune

	// Comment, if non-zero, marks lines to skip.
	Comment rune
}

// DefaultOptions returns comma-separated parsing without comments.
func DefaultOptions() LoadOptions {
	return LoadOptions{Comma: ',', Comment: 0}
}

// WithComma sets the field delimiter, e.g. ';' for semicolon exports.
func WithComma(r rune) Option {
	return func(o *LoadOptions) { o.Comma = r }
}

// WithComment sets the comment-line marker.
func WithComment(r rune) Option {
	return func(o *LoadOptions) { o.Comment = r }
}

// NormalizeColumn trims and lowercases a column name.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LoadCSV reads a header row followed by data rows into a RecordList.
// It returns the normalized header in input order.
func LoadCSV(r io.Reader, opts ...Option) (*RecordList, []string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	cr.Comment = o.Comment
	// widths are checked below to report ErrRowWidth
	cr.FieldsPerRecord = -1

	raw, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: header: %w", err)
	}

	header := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = NormalizeColumn(h)
		if seen[h] {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, h)
		}
		seen[h] = true
		header[i] = h
	}

	list := &RecordList{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: row %d: %w", list.Len()+1, err)
		}
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrRowWidth, list.Len()+1, len(row), len(header))
		}
		rec := make(Record, len(header))
		for i, h := range header {
			rec[h] = row[i]
		}
		list.Append(rec)
	}
	return list, header, nil
}

// WriteColumnCSV writes column as a one-column CSV: the column name, then
// one row per record. Records lacking the column produce an empty field.
func WriteColumnCSV(w io.Writer, list *RecordList, column string) error {
	column = NormalizeColumn(column)
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{column}); err != nil {
		return fmt.Errorf("ingest: write header: %w", err)
	}
	var err error
	list.Each(func(i int, rec Record) bool {
		if err = cw.Write([]string{rec[column]}); err != nil {
			err = fmt.Errorf("ingest: write row %d: %w", i+1, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
