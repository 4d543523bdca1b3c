package objpatch

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
	"github.com/signadot/objpatch/irdiff"
	"github.com/signadot/objpatch/patcher"
)

// ErrTypeMismatch is returned by Diff for values of different types.
var ErrTypeMismatch = errors.New("type mismatch")

var patchers sync.Map // reflect.Type -> *patcher.Complex

// PatcherFor returns the cached patcher for the struct type underlying t,
// which may be T, *T or **T.
func PatcherFor(t reflect.Type) (*patcher.Complex, error) {
	st := structType(t)
	if p, ok := patchers.Load(st); ok {
		return p.(*patcher.Complex), nil
	}
	p, err := patcher.For(st)
	if err != nil {
		return nil, err
	}
	actual, _ := patchers.LoadOrStore(st, p)
	return actual.(*patcher.Complex), nil
}

func structType(t reflect.Type) reflect.Type {
	for i := 0; i < 2 && t != nil && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	return t
}

// Extract returns the node tree of v, a struct or a pointer to one.
func Extract(v any) (*ir.Node, error) {
	p, err := PatcherFor(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	n := p.ExtractValue(v)
	if n == nil {
		return nil, fmt.Errorf("%w: cannot extract %T", patcher.ErrUnsupported, v)
	}
	return n, nil
}

// Apply merges n into the value dst points to. See patcher.Complex.ApplyTo.
func Apply(n *ir.Node, dst any) error {
	p, err := PatcherFor(reflect.TypeOf(dst))
	if err != nil {
		return err
	}
	return p.ApplyTo(n, dst)
}

// Marshal extracts v and encodes it with f.
func Marshal(v any, f format.Formatter) ([]byte, error) {
	n, err := Extract(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := f.Encode(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data with f and applies it to dst as a patch: fields
// not present in data keep their values.
func Unmarshal(data []byte, dst any, f format.Formatter) error {
	n, err := f.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	ir.Sort(n)
	return Apply(n, dst)
}

// Diff returns the patch which turns from into to, or nil if they extract
// to the same tree. from and to must have the same struct type, possibly
// through pointers.
//
// Applying the patch to from yields to, except for slices whose length
// differs: Apply only resizes nil slices.
func Diff(from, to any) (*ir.Node, error) {
	ft, tt := structType(reflect.TypeOf(from)), structType(reflect.TypeOf(to))
	if ft != tt {
		return nil, fmt.Errorf("%w: %v and %v", ErrTypeMismatch, ft, tt)
	}
	fn, err := Extract(from)
	if err != nil {
		return nil, err
	}
	tn, err := Extract(to)
	if err != nil {
		return nil, err
	}
	return irdiff.Diff(fn, tn), nil
}

// Matches reports whether applying patch to v would leave it unchanged.
func Matches(v any, patch *ir.Node) (bool, error) {
	n, err := Extract(v)
	if err != nil {
		return false, err
	}
	return irdiff.Match(n, patch), nil
}
