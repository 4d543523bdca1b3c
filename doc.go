// Package objpatch extracts Go struct values into serialization-neutral node
// trees and applies node trees back onto Go values as partial patches.
//
// # Usage
//
//	type Config struct {
//	    Name  string   `objpatch:"name"`
//	    Ports []int    `objpatch:"ports"`
//	    Owner *string  `objpatch:"owner"`
//	}
//
//	n, err := objpatch.Extract(cfg)
//	data, err := objpatch.Marshal(cfg, format.JSON())
//
//	// patch only the name
//	err = objpatch.Apply(ir.FromFields("", ir.FromString("name", "x")), &cfg)
//
//	// compute the patch between two values
//	patch, err := objpatch.Diff(old, cfg)
//
// Patchers are built once per struct type with default options and cached.
// Use the patcher package directly for field filters or a different depth
// limit.
//
// # Related Packages
//
//   - github.com/signadot/objpatch/ir - the node model
//   - github.com/signadot/objpatch/patcher - per-type patchers
//   - github.com/signadot/objpatch/format - JSON, YAML and dump formats
//   - github.com/signadot/objpatch/irdiff - untyped diff and merge
package objpatch
