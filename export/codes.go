package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteCodes writes codes as a flat JSON object with keys in sorted order.
// huffman.CodeMap can be passed directly.
func WriteCodes(w io.Writer, codes map[string]string, opts ...Option) error {
	o := buildOptions(opts)
	if codes == nil {
		codes = map[string]string{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", o.Indent)
	if err := enc.Encode(codes); err != nil {
		return fmt.Errorf("export: write codes: %w", err)
	}
	return nil
}

// ReadCodes decodes a code map written by WriteCodes.
func ReadCodes(r io.Reader) (map[string]string, error) {
	var codes map[string]string
	if err := json.NewDecoder(r).Decode(&codes); err != nil {
		return nil, fmt.Errorf("export: read codes: %w", err)
	}
	return codes, nil
}
