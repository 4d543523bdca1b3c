package format

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/objpatch/ir"
)

// ApplyJSONPatch applies the RFC 6902 patch to the JSON wire form of n and
// decodes the result. n is not modified.
func ApplyJSONPatch(n *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding json patch: %w", err)
	}
	d, err := MarshalJSON(n)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying json patch: %w", err)
	}
	return UnmarshalJSON(out)
}
