package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/signadot/objpatch/ir"
)

type jsonFormat struct{}

// JSON returns the JSON wire formatter.
func JSON() Formatter { return jsonFormat{} }

func (jsonFormat) Name() string { return "json" }

func (jsonFormat) Encode(w io.Writer, n *ir.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toWire(n))
}

func (jsonFormat) Decode(r io.Reader) (*ir.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	w := &wireNode{}
	if err := dec.Decode(w); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return fromWire(w, "")
}

// MarshalJSON returns the compact JSON wire form of n.
func MarshalJSON(n *ir.Node) ([]byte, error) {
	return json.Marshal(toWire(n))
}

// UnmarshalJSON decodes a JSON wire form.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	return jsonFormat{}.Decode(bytes.NewReader(d))
}
