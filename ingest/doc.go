// Package ingest loads tabular input into an in-memory doubly linked list of
// records and derives the token sequence that feeds the index builders.
//
// A typical pipeline:
//
//	list, header, err := ingest.LoadCSV(f)
//	tokens, header, err := ingest.DeriveTokens(list, header, "famsize_age", "famsize", "age")
//
// Header names are trimmed and lowercased on load, and column arguments are
// normalized the same way, so "FamSize " and "famsize" name the same column.
// Cell values are kept verbatim.
package ingest
