package patcher

import (
	"fmt"
	"reflect"

	"github.com/hengadev/errsx"

	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Complex patches a struct, or a pointer to a struct, field by field.
//
// Its children are sorted by node name in ordinal order. Apply relies on
// the incoming node's children being sorted the same way.
type Complex struct {
	typ      reflect.Type
	ptr      bool
	children []child

	// set on roots only
	dropped errsx.Map
}

type child struct {
	name    string
	index   []int
	patcher Patcher
}

func (c *Complex) Type() ir.Type {
	return ir.ComplexType
}

func (c *Complex) structType() reflect.Type {
	if c.ptr {
		return c.typ.Elem()
	}
	return c.typ
}

// Fields returns the node names of the fields c patches, in canonical
// order.
func (c *Complex) Fields() []string {
	res := make([]string, len(c.children))
	for i := range c.children {
		res[i] = c.children[i].name
	}
	return res
}

// Child returns the patcher for the field named name, or nil.
func (c *Complex) Child(name string) Patcher {
	for i := range c.children {
		if c.children[i].name == name {
			return c.children[i].patcher
		}
	}
	return nil
}

// Dropped returns the fields which were left out when c was built, as an
// errsx.Map keyed by Go field path. It returns nil if none were.
func (c *Complex) Dropped() error {
	if c.dropped.IsEmpty() {
		return nil
	}
	return c.dropped.AsError()
}

func (c *Complex) Extract(name string, v reflect.Value) *ir.Node {
	if c.ptr {
		if !v.IsValid() || v.IsNil() {
			return ir.NullObject(name)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	return c.extractStruct(name, v)
}

func (c *Complex) extractStruct(name string, v reflect.Value) *ir.Node {
	res := ir.FromFields(name)
	res.Children = make([]*ir.Node, 0, len(c.children))
	for i := range c.children {
		ch := &c.children[i]
		n := ch.patcher.Extract(ch.name, v.FieldByIndex(ch.index))
		if n == nil {
			continue
		}
		res.Children = append(res.Children, n)
	}
	return res
}

// ExtractValue extracts the node tree of v, which must be a value of c's
// struct type or a pointer to one. It returns nil for other values.
func (c *Complex) ExtractValue(v any) *ir.Node {
	rv := reflect.ValueOf(v)
	st := c.structType()
	switch {
	case !rv.IsValid():
		return ir.NullObject("")
	case rv.Type() == st:
		return c.extractStruct("", rv)
	case rv.Type() == reflect.PointerTo(st):
		if rv.IsNil() {
			return ir.NullObject("")
		}
		return c.extractStruct("", rv.Elem())
	}
	return nil
}

func (c *Complex) Apply(n *ir.Node, old reflect.Value) reflect.Value {
	if c.ptr {
		return c.applyPointer(n, old)
	}
	return c.applyStruct(n, old)
}

func (c *Complex) accepts(n *ir.Node) bool {
	if n == nil || n.Type != ir.ComplexType || n.Collection {
		if debug.Apply() {
			debug.Logf("complex %v: skipping mismatched node %v\n", c.typ, n)
		}
		return false
	}
	return true
}

func (c *Complex) applyStruct(n *ir.Node, old reflect.Value) reflect.Value {
	if !c.accepts(n) {
		return old
	}
	if n.Null {
		return reflect.Zero(old.Type())
	}
	res := reflect.New(old.Type()).Elem()
	res.Set(old)
	c.merge(n.Children, res)
	return res
}

func (c *Complex) applyPointer(n *ir.Node, old reflect.Value) reflect.Value {
	if !c.accepts(n) {
		return old
	}
	if n.Null {
		return reflect.Zero(old.Type())
	}
	res := old
	if res.IsNil() {
		res = reflect.New(old.Type().Elem())
	}
	c.merge(n.Children, res.Elem())
	return res
}

// merge walks the incoming children and c's children together. Both are
// expected in ascending ordinal name order; c's cursor only moves forward.
func (c *Complex) merge(in []*ir.Node, target reflect.Value) {
	j := 0
	for _, n := range in {
		for j < len(c.children) && c.children[j].name < n.Name {
			j++
		}
		if j == len(c.children) {
			break
		}
		ch := &c.children[j]
		if ch.name != n.Name {
			if debug.Apply() {
				debug.Logf("complex %v: no field %q\n", c.typ, n.Name)
			}
			continue
		}
		fv := target.FieldByIndex(ch.index)
		fv.Set(ch.patcher.Apply(n, fv))
	}
}

// ApplyTo applies n to the value dst points to. dst must be a non-nil
// pointer to c's struct type, patched in place, or a non-nil pointer to a
// pointer to it, which may be allocated or set to nil.
func (c *Complex) ApplyTo(n *ir.Node, dst any) error {
	dv := reflect.ValueOf(dst)
	if !dv.IsValid() || dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("%w: %T", ErrDestination, dst)
	}
	slot := dv.Elem()
	st := c.structType()
	switch slot.Type() {
	case st:
		slot.Set(c.applyStruct(n, slot))
	case reflect.PointerTo(st):
		slot.Set(c.applyPointer(n, slot))
	default:
		return fmt.Errorf("%w: %T is not *%v or **%v", ErrDestination, dst, st, st)
	}
	return nil
}
