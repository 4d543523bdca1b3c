// Package ir provides the node tree exchanged between typed Go values and
// formatters.
//
// # Overview
//
// A node tree is a serialization-neutral image of a Go value. Patchers
// (package patcher) produce node trees from values and apply node trees to
// values; formatters (package format) turn node trees into bytes and back.
// Nothing in this package knows about Go types or about wire encodings.
//
// # Node Shapes
//
// A Node is one of:
//
//   - a leaf, carrying a primitive kind (BoolType, IntType, UintType,
//     FloatType, StringType) and the matching value field. Only string
//     leaves may be Null.
//   - an object, with Type ComplexType and children named by field.
//   - a collection, with Collection set, Type set to the element kind,
//     a Count and children named by decimal index.
//
// A Null complex node has no children.
//
// # Ordering
//
// Object children are expected in ascending ordinal (byte-wise) name order.
// Patchers rely on this when merging a node's children with a type's fields
// in a single pass: out of order children are silently skipped. Use Sort to
// canonicalize a tree built by hand and IsSorted to check one.
//
// Collection children need not be contiguous: a collection with Count 5 and
// children "1" and "3" describes a five element container in which only two
// slots are set.
//
// # Creating Nodes
//
//	pt := ir.FromFields("",
//	    ir.FromInt("x", 3),
//	    ir.FromInt("y", 4),
//	)
//	tags := ir.FromSlice("tags", ir.StringType, []*ir.Node{
//	    ir.FromString("", "a"),
//	    ir.FromString("", "b"),
//	})
package ir
