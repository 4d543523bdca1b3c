// Package irdiff computes and applies differences between ir node trees
// without reference to Go types.
//
// Diff produces a patch tree in the same form Apply consumes: only the
// object fields and collection elements which differ, with new leaves,
// nulls and shape changes carried whole. Merge is the untyped counterpart of
// applying such a patch to a Go value.
//
//	patch := irdiff.Diff(from, to)
//	// ir.Equal(irdiff.Merge(from, patch), to)
//
// A patch cannot remove object fields, so trees where to lacks fields
// present in from do not round trip.
//
// # Related Packages
//
//   - github.com/signadot/objpatch/ir - the node model
//   - github.com/signadot/objpatch/patcher - typed Apply
package irdiff
