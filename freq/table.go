package freq

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrLengthMismatch is returned by FromCounts when the two slices differ in length.
	ErrLengthMismatch = errors.New("freq: symbols and counts length mismatch")

	// ErrDuplicateSymbol is returned by FromCounts when a symbol appears twice.
	ErrDuplicateSymbol = errors.New("freq: duplicate symbol")

	// ErrCountOverflow is returned by AddN when a symbol's count would exceed uint64.
	ErrCountOverflow = errors.New("freq: count overflows uint64")
)

// Entry pairs a symbol with its occurrence count.
type Entry struct {
	Symbol string
	Count  uint64
}

// Table is an ordered symbol → count mapping.
// The zero value is an empty, ready-to-use table.
type Table struct {
	index   map[string]int // symbol → position in entries
	entries []Entry        // first-appearance order
	total   uint64         // saturates at math.MaxUint64
}

// NewTable returns an empty table sized for roughly n distinct symbols.
func NewTable(n int) *Table {
	if n < 0 {
		n = 0
	}
	return &Table{
		index:   make(map[string]int, n),
		entries: make([]Entry, 0, n),
	}
}

// Count builds a table from tokens, preserving first-appearance order.
func Count(tokens []string) *Table {
	t := NewTable(0)
	for _, tok := range tokens {
		t.Add(tok)
	}
	return t
}

// FromCounts builds a table with an explicit symbol order.
// Zero counts are kept; callers decide whether they are meaningful.
func FromCounts(symbols []string, counts []uint64) (*Table, error) {
	if len(symbols) != len(counts) {
		return nil, fmt.Errorf("%w: %d symbols, %d counts", ErrLengthMismatch, len(symbols), len(counts))
	}
	t := NewTable(len(symbols))
	for i, sym := range symbols {
		if _, ok := t.index[sym]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
		}
		t.index[sym] = len(t.entries)
		t.entries = append(t.entries, Entry{Symbol: sym, Count: counts[i]})
		t.total = addSat(t.total, counts[i])
	}
	return t, nil
}

// Add records one occurrence of sym. A count already at math.MaxUint64
// stays there.
func (t *Table) Add(sym string) {
	_ = t.AddN(sym, 1)
}

// AddN records n occurrences of sym. A first sighting with n == 0 still
// registers the symbol and fixes its rank.
//
// If the symbol's count would exceed math.MaxUint64, AddN returns
// ErrCountOverflow and leaves the count unchanged; the symbol is still
// registered. Total saturates instead of failing, so it never blocks an add.
func (t *Table) AddN(sym string, n uint64) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	i, ok := t.index[sym]
	if !ok {
		i = len(t.entries)
		t.index[sym] = i
		t.entries = append(t.entries, Entry{Symbol: sym})
	}
	sum, carry := bits.Add64(t.entries[i].Count, n, 0)
	if carry != 0 {
		return fmt.Errorf("%w: %q has %d, adding %d", ErrCountOverflow, sym, t.entries[i].Count, n)
	}
	t.entries[i].Count = sum
	t.total = addSat(t.total, n)
	return nil
}

// addSat adds with saturation at math.MaxUint64.
func addSat(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Len reports the number of distinct symbols.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Total reports the sum of all counts, saturated at math.MaxUint64.
func (t *Table) Total() uint64 {
	if t == nil {
		return 0
	}
	return t.total
}

// Get returns the count for sym and whether sym is present.
func (t *Table) Get(sym string) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[sym]
	if !ok {
		return 0, false
	}
	return t.entries[i].Count, true
}

// Rank returns the first-appearance position of sym, or -1.
func (t *Table) Rank(sym string) int {
	if t == nil {
		return -1
	}
	i, ok := t.index[sym]
	if !ok {
		return -1
	}
	return i
}

// Entries returns a copy of the entries in first-appearance order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Symbols returns the symbols in first-appearance order.
func (t *Table) Symbols() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Symbol
	}
	return out
}

// Map returns the counts as a plain map.
func (t *Table) Map() map[string]uint64 {
	if t == nil {
		return map[string]uint64{}
	}
	out := make(map[string]uint64, len(t.entries))
	for _, e := range t.entries {
		out[e.Symbol] = e.Count
	}
	return out
}
