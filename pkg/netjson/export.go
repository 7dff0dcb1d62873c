package netjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/netgen/pkg/network"
)

// Marshal encodes n as indented JSON.
func Marshal(n *network.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes n as JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(n *network.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
