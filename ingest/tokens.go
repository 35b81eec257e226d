package ingest

import (
	"fmt"
	"strings"
)

// TokenSep joins column values into one token.
const TokenSep = "_"

// DeriveTokens joins the values of columns with TokenSep for every record,
// stores the result under target on the record and returns the tokens in
// list order. header is the one returned by LoadCSV; every column must be
// in it. target is appended to header when new, and the extended header is
// returned.
func DeriveTokens(list *RecordList, header []string, target string, columns ...string) ([]string, []string, error) {
	if len(columns) == 0 {
		return nil, header, fmt.Errorf("%w: no columns given", ErrMissingColumn)
	}
	known := make(map[string]bool, len(header))
	for _, h := range header {
		known[h] = true
	}
	cols := make([]string, len(columns))
	for i, c := range columns {
		c = NormalizeColumn(c)
		if !known[c] {
			return nil, header, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
		cols[i] = c
	}
	target = NormalizeColumn(target)

	tokens := make([]string, 0, list.Len())
	parts := make([]string, len(cols))
	list.Each(func(_ int, rec Record) bool {
		for i, c := range cols {
			parts[i] = rec[c]
		}
		tok := strings.Join(parts, TokenSep)
		rec[target] = tok
		tokens = append(tokens, tok)
		return true
	})

	if !known[target] {
		header = append(header[:len(header):len(header)], target)
	}
	return tokens, header, nil
}
