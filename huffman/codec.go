package huffman

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// countBits is the width of the token-count header written by WriteStream.
const countBits = 64

// trieNode is one slot of a decode trie. Index 0 is the root, so a zero
// child index means "absent".
type trieNode struct {
	child  [2]int
	symbol string
	leaf   bool
}

// decodeTrie maps bit paths back to symbols.
type decodeTrie struct {
	nodes []trieNode
}

// newDecodeTrie rebuilds the prefix tree for codes. It rejects empty,
// repeated, or overlapping codewords with ErrNotPrefixFree.
func newDecodeTrie(codes CodeMap) (*decodeTrie, error) {
	t := &decodeTrie{nodes: make([]trieNode, 1, 2*len(codes))}
	for _, sym := range codes.Symbols() {
		word := codes[sym]
		if word == "" {
			return nil, fmt.Errorf("%w: empty code for %q", ErrNotPrefixFree, sym)
		}
		cur := 0
		for i := 0; i < len(word); i++ {
			bit, err := bitOf(word[i])
			if err != nil {
				return nil, fmt.Errorf("code for %q: %w", sym, err)
			}
			if t.nodes[cur].leaf {
				return nil, fmt.Errorf("%w: %q extends the code of %q", ErrNotPrefixFree, sym, t.nodes[cur].symbol)
			}
			next := t.nodes[cur].child[bit]
			if next == 0 {
				next = len(t.nodes)
				t.nodes = append(t.nodes, trieNode{})
				t.nodes[cur].child[bit] = next
			}
			cur = next
		}
		n := &t.nodes[cur]
		if n.leaf || n.child[0] != 0 || n.child[1] != 0 {
			return nil, fmt.Errorf("%w: code %q of %q collides", ErrNotPrefixFree, word, sym)
		}
		n.leaf, n.symbol = true, sym
	}
	return t, nil
}

// step follows one bit from cur. ok is false when no codeword continues that way.
func (t *decodeTrie) step(cur, bit int) (next int, ok bool) {
	next = t.nodes[cur].child[bit]
	return next, next != 0
}

func bitOf(c byte) (int, error) {
	switch c {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBit, c)
	}
}

// Encode concatenates the codewords of tokens into a bit-string.
func Encode(codes CodeMap, tokens []string) (string, error) {
	var sb strings.Builder
	for i, tok := range tokens {
		word, ok := codes[tok]
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, tok, i)
		}
		sb.WriteString(word)
	}
	return sb.String(), nil
}

// Decode splits a bit-string produced by Encode back into tokens.
func Decode(codes CodeMap, bits string) ([]string, error) {
	trie, err := newDecodeTrie(codes)
	if err != nil {
		return nil, err
	}
	out := []string{}
	cur, depth := 0, 0
	for i := 0; i < len(bits); i++ {
		bit, err := bitOf(bits[i])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		next, ok := trie.step(cur, bit)
		if !ok {
			return nil, fmt.Errorf("%w: at offset %d", ErrUnknownCode, i)
		}
		depth++
		if trie.nodes[next].leaf {
			out = append(out, trie.nodes[next].symbol)
			next, depth = 0, 0
		}
		cur = next
	}
	if cur != 0 {
		return nil, fmt.Errorf("%w: %d trailing bits", ErrTruncated, depth)
	}
	return out, nil
}

// Encoder writes codewords bit-packed to an io.Writer.
// The Encoder does not own the writer; Close flushes the last partial byte.
type Encoder struct {
	w     *bitio.Writer
	codes CodeMap
}

// NewEncoder returns an Encoder for codes writing to w.
func NewEncoder(codes CodeMap, w io.Writer) *Encoder {
	return &Encoder{w: bitio.NewWriter(w), codes: codes}
}

// WriteToken writes the codeword of tok.
func (e *Encoder) WriteToken(tok string) error {
	word, ok := e.codes[tok]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, tok)
	}
	for i := 0; i < len(word); i++ {
		if err := e.w.WriteBool(word[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

// Close pads the final byte with zero bits and flushes it.
func (e *Encoder) Close() error {
	return e.w.Close()
}

// Decoder reads bit-packed codewords from an io.Reader.
type Decoder struct {
	r    *bitio.Reader
	trie *decodeTrie
}

// NewDecoder returns a Decoder for codes reading from r.
// It fails with ErrNotPrefixFree when codes cannot be decoded unambiguously.
func NewDecoder(codes CodeMap, r io.Reader) (*Decoder, error) {
	trie, err := newDecodeTrie(codes)
	if err != nil {
		return nil, err
	}
	return &Decoder{r: bitio.NewReader(r), trie: trie}, nil
}

// ReadToken reads one codeword. It returns io.EOF only when the input ends
// exactly on a codeword boundary; ending inside a codeword is ErrTruncated.
func (d *Decoder) ReadToken() (string, error) {
	cur := 0
	for consumed := 0; ; consumed++ {
		b, err := d.r.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if consumed == 0 {
					return "", io.EOF
				}
				return "", fmt.Errorf("%w: after %d bits", ErrTruncated, consumed)
			}
			return "", err
		}
		bit := 0
		if b {
			bit = 1
		}
		next, ok := d.trie.step(cur, bit)
		if !ok {
			return "", ErrUnknownCode
		}
		if d.trie.nodes[next].leaf {
			return d.trie.nodes[next].symbol, nil
		}
		cur = next
	}
}

// WriteStream writes a 64-bit token count followed by the bit-packed tokens.
// The count lets ReadStream ignore the zero padding of the final byte.
func WriteStream(w io.Writer, codes CodeMap, tokens []string) error {
	enc := NewEncoder(codes, w)
	if err := enc.w.WriteBits(uint64(len(tokens)), countBits); err != nil {
		return err
	}
	for _, tok := range tokens {
		if err := enc.WriteToken(tok); err != nil {
			return err
		}
	}
	return enc.Close()
}

// ReadStream reads a stream produced by WriteStream.
func ReadStream(r io.Reader, codes CodeMap) ([]string, error) {
	dec, err := NewDecoder(codes, r)
	if err != nil {
		return nil, err
	}
	n, err := dec.r.ReadBits(countBits)
	if err != nil {
		return nil, fmt.Errorf("%w: missing token count: %v", ErrTruncated, err)
	}
	out := make([]string, 0, min(n, 1<<16))
	for i := uint64(0); i < n; i++ {
		tok, err := dec.ReadToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: got %d of %d tokens", ErrTruncated, i, n)
			}
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}
