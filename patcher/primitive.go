package patcher

import (
	"encoding"
	"reflect"

	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Primitive patches a scalar field: a bool, number or string, a type
// implementing encoding.TextMarshaler, or a *string or pointer to a text
// type.
//
// A nil pointer or an invalid value is the absent state. Only string kinds
// can express it in a node (as a null leaf); absent values of other kinds
// produce no node and are never written by Apply.
type Primitive struct {
	typ  reflect.Type
	kind ir.Type
	ptr  bool
	text bool
}

func newPrimitive(t reflect.Type, kind ir.Type) *Primitive {
	p := &Primitive{typ: t, kind: kind}
	base := t
	if t.Kind() == reflect.Pointer {
		p.ptr = true
		base = t.Elem()
	}
	p.text = isText(base)
	return p
}

func (p *Primitive) Type() ir.Type {
	return p.kind
}

func (p *Primitive) Extract(name string, v reflect.Value) *ir.Node {
	if !v.IsValid() || (p.ptr && v.IsNil()) {
		if p.kind == ir.StringType {
			return ir.NullString(name)
		}
		return nil
	}
	if p.ptr {
		v = v.Elem()
	}
	if k, err := Classify(v.Type()); err != nil || k != p.kind {
		if debug.Extract() {
			debug.Logf("primitive %s: value of type %v does not classify as %s\n", name, v.Type(), p.kind)
		}
		return nil
	}
	if p.text {
		return extractText(name, v)
	}
	switch p.kind {
	case ir.BoolType:
		return ir.FromBool(name, v.Bool())
	case ir.IntType:
		return ir.FromInt(name, v.Int())
	case ir.UintType:
		return ir.FromUint(name, v.Uint())
	case ir.FloatType:
		return ir.FromFloat(name, v.Float())
	case ir.StringType:
		return ir.FromString(name, v.String())
	}
	return nil
}

func extractText(name string, v reflect.Value) *ir.Node {
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	d, err := pv.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		if debug.Extract() {
			debug.Logf("primitive %s: MarshalText: %v\n", name, err)
		}
		return nil
	}
	return ir.FromString(name, string(d))
}

func (p *Primitive) Apply(n *ir.Node, old reflect.Value) reflect.Value {
	if p.kind != ir.StringType && (!old.IsValid() || (p.ptr && old.IsNil())) {
		return old
	}
	if n == nil || n.Type != p.kind || n.IsComplex() {
		if debug.Apply() {
			debug.Logf("primitive %v: skipping mismatched node %v\n", p.typ, n)
		}
		return old
	}
	if n.Null {
		if p.kind != ir.StringType {
			return old
		}
		return reflect.Zero(p.typ)
	}
	base := p.typ
	if p.ptr {
		base = p.typ.Elem()
	}
	pv := reflect.New(base)
	if !p.set(pv.Elem(), n) {
		return old
	}
	if p.ptr {
		return pv
	}
	return pv.Elem()
}

// set stores the node's value in the addressable v. It reports false if the
// value does not fit v's type.
func (p *Primitive) set(v reflect.Value, n *ir.Node) bool {
	if p.text {
		err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(n.String))
		if err != nil && debug.Apply() {
			debug.Logf("primitive %v: UnmarshalText: %v\n", p.typ, err)
		}
		return err == nil
	}
	switch p.kind {
	case ir.BoolType:
		v.SetBool(n.Bool)
	case ir.IntType:
		if v.OverflowInt(n.Int64) {
			return false
		}
		v.SetInt(n.Int64)
	case ir.UintType:
		if v.OverflowUint(n.Uint64) {
			return false
		}
		v.SetUint(n.Uint64)
	case ir.FloatType:
		if v.OverflowFloat(n.Float64) {
			return false
		}
		v.SetFloat(n.Float64)
	case ir.StringType:
		v.SetString(n.String)
	default:
		return false
	}
	return true
}
