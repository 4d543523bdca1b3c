package patcher

import (
	"reflect"
	"strconv"

	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Collection patches an array or slice field. All elements share one
// element patcher.
//
// Nodes for collections are tagged with the element kind and carry the
// container length in Count. Children are named by index.
type Collection struct {
	typ      reflect.Type
	elemKind ir.Type
	elem     Patcher
	maxCount int
}

func (c *Collection) Type() ir.Type {
	return c.elemKind
}

func (c *Collection) Extract(name string, v reflect.Value) *ir.Node {
	if isAbsent(v) {
		return ir.NullCollection(name, c.elemKind)
	}
	n := v.Len()
	res := ir.FromElements(name, c.elemKind, n)
	res.Children = make([]*ir.Node, 0, n)
	for i := range n {
		e := c.elem.Extract(strconv.Itoa(i), v.Index(i))
		if e == nil {
			continue
		}
		res.Children = append(res.Children, e)
	}
	return res
}

// Apply patches the elements named by n's children. A nil slice is first
// allocated with n.Count zero elements, unless n.Count is over the limit set
// with WithMaxCount; an existing container keeps its length and children
// outside it are skipped.
func (c *Collection) Apply(n *ir.Node, old reflect.Value) reflect.Value {
	if n == nil || !n.Collection || n.Type != c.elemKind || n.Count < 0 || n.Null {
		if debug.Apply() {
			debug.Logf("collection %v: skipping mismatched node %v\n", c.typ, n)
		}
		return old
	}
	var res reflect.Value
	switch {
	case isAbsent(old):
		if n.Count > c.maxCount {
			if debug.Apply() {
				debug.Logf("collection %v: skipping count %d over limit %d\n", c.typ, n.Count, c.maxCount)
			}
			return old
		}
		res = makeContainer(c.typ, n.Count)
	case old.Kind() == reflect.Array:
		res = reflect.New(c.typ).Elem()
		res.Set(old)
	default:
		res = old
	}
	cont, ok := asContainer(res)
	if !ok {
		return old
	}
	for _, in := range n.Children {
		i := in.Index()
		if i < 0 || i >= cont.Len() {
			if debug.Apply() {
				debug.Logf("collection %v: skipping element %q (len %d)\n", c.typ, in.Name, cont.Len())
			}
			continue
		}
		cont.Set(i, c.elem.Apply(in, cont.Get(i)))
	}
	return res
}
