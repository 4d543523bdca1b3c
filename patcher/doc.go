// Package patcher converts Go values to and from ir node trees.
//
// # Usage
//
//	type Point struct {
//	    X int `objpatch:"x"`
//	    Y int `objpatch:"y"`
//	}
//	p, err := patcher.New[Point]()
//
//	node := p.ExtractValue(Point{X: 3, Y: 4})
//	// {x: 3, y: 4}
//
//	pt := Point{X: 3, Y: 4}
//	err = p.ApplyTo(ir.FromFields("", ir.FromInt("x", 9)), &pt)
//	// pt == Point{X: 9, Y: 4}
//
// # Patchers
//
// A patcher is built once per type, by reflection, and then reused. There
// are three kinds:
//
//   - Primitive for bools, numbers, strings and text marshalers
//   - Complex for structs, with one child patcher per serializable field
//   - Collection for arrays and slices, with one shared element patcher
//
// The root patcher is always a Complex.
//
// # Patch Semantics
//
// Applying a node merges it into the existing value: fields missing from the
// node are left alone and node children naming no field are ignored. Nodes
// whose kind or shape does not match are ignored too. Apply never fails;
// skipped parts can be traced with OBJPATCH_DEBUG_APPLY=true.
//
// Complex children are matched with a single forward pass over two lists
// sorted by ordinal name order, so the incoming node's children must be
// sorted (see ir.Sort).
//
// Only strings have a null leaf, so *string and pointers to text types are
// the only pointers to primitives; fields such as *int are dropped. A nil
// *Struct extracts as a null object. A nil slice extracts as a null
// collection; applying a collection node to a nil slice allocates Count
// elements, up to the WithMaxCount limit.
//
// # Field Visibility
//
// Exported fields are serializable unless tagged `objpatch:"-"`; a tag name
// renames the field's node. Fields of embedded structs are promoted, with
// shallower fields shadowing deeper ones. WithFieldFilter and FieldExpr
// restrict the set further.
//
// # Limitations
//
// Cyclic values are not supported. Self-referential types are built to
// a fixed depth (DefaultMaxDepth) and fields below it are dropped.
package patcher
