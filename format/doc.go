// Package format encodes and decodes ir node trees.
//
// # Formats
//
// JSON and YAML use the same wire form, one object per node:
//
//	{
//	  "name": "Points",
//	  "type": "Complex",
//	  "collection": true,
//	  "count": 2,
//	  "children": [
//	    {"name": "0", "type": "Complex", "children": [...]},
//	    {"name": "1", "type": "Complex", "null": true}
//	  ]
//	}
//
// The wire form is lossless: decoding an encoded tree gives back an equal
// tree. Leaf values are stored under "value"; a missing value is the zero
// value of the node's type. Non-finite floats are written as the strings
// "NaN", "+Inf" and "-Inf".
//
// The dump format is a compact, optionally colored rendering for people. It
// cannot be decoded.
//
// # JSON Patch
//
// ApplyJSONPatch applies RFC 6902 operations to the JSON wire form of a
// tree, so paths address wire fields:
//
//	[{"op": "replace", "path": "/children/0/value", "value": 9}]
//
// # Related Packages
//
//   - github.com/signadot/objpatch/ir - the node model
//   - github.com/signadot/objpatch/irdiff - diffs between trees
package format
