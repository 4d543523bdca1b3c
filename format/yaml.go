package format

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/objpatch/ir"
)

type yamlFormat struct{}

// YAML returns the YAML wire formatter.
func YAML() Formatter { return yamlFormat{} }

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Encode(w io.Writer, n *ir.Node) error {
	return yaml.NewEncoder(w, yaml.Indent(2)).Encode(toWire(n))
}

func (yamlFormat) Decode(r io.Reader) (*ir.Node, error) {
	w := &wireNode{}
	if err := yaml.NewDecoder(r).Decode(w); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return fromWire(w, "")
}
