package patcher

import (
	"reflect"

	"github.com/signadot/objpatch/ir"
)

// Patcher converts values of one Go type to and from nodes.
//
// Patchers are built once per type and hold no mutable state; they may be
// used from several goroutines as long as the values they read and write
// are not shared.
type Patcher interface {
	// Type is the node kind the patcher produces and accepts. For
	// collections it is the element kind.
	Type() ir.Type

	// Extract returns the node for v named name, or nil when v has no
	// node (an absent non-string primitive, or an unsupported value).
	Extract(name string, v reflect.Value) *ir.Node

	// Apply returns old patched with n. Nodes which do not match the
	// patcher's kind or shape leave old unchanged. The caller stores the
	// result back where old came from.
	Apply(n *ir.Node, old reflect.Value) reflect.Value
}

var (
	_ Patcher = (*Primitive)(nil)
	_ Patcher = (*Complex)(nil)
	_ Patcher = (*Collection)(nil)
)
