package patcher

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/hengadev/errsx"

	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// For builds the patcher for t, which must be a struct type or a pointer to
// one.
//
// Building is best effort below the root: fields whose types cannot be
// patched are left out and reported by Dropped. There is no cycle
// detection; self-referential types are built until the maximum depth is
// reached (see WithMaxDepth).
func For(t reflect.Type, opts ...Option) (*Complex, error) {
	if t == nil {
		return nil, &BuildError{Err: fmt.Errorf("%w: nil type", ErrUnsupported)}
	}
	st := t
	if t.Kind() == reflect.Pointer {
		st = t.Elem()
	}
	if st.Kind() != reflect.Struct || isText(st) {
		return nil, &BuildError{Type: t, Err: ErrUnsupported}
	}
	b := &builder{cfg: newBuildConfig(opts...)}
	c := b.complex(t, "", 0)
	c.dropped = b.dropped
	if debug.Build() {
		debug.Logf("built %v: fields %v dropped %v\n", t, c.Fields(), c.Dropped())
	}
	return c, nil
}

// New is For for the type parameter T.
func New[T any](opts ...Option) (*Complex, error) {
	return For(reflect.TypeFor[T](), opts...)
}

type builder struct {
	cfg     *buildConfig
	dropped errsx.Map
}

func (b *builder) drop(path string, t reflect.Type, err error) {
	if debug.Build() {
		debug.Logf("dropping %s (%v): %v\n", path, t, err)
	}
	b.dropped.Set(path, &BuildError{Type: t, Path: path, Err: err})
}

func (b *builder) build(t reflect.Type, path string, depth int) (Patcher, error) {
	if depth > b.cfg.maxDepth {
		return nil, ErrDepth
	}
	kind, err := Classify(t)
	if err != nil {
		return nil, err
	}
	switch {
	case isCollection(t):
		return b.collection(t, path, depth)
	case kind == ir.ComplexType:
		return b.complex(t, path, depth), nil
	default:
		return newPrimitive(t, kind), nil
	}
}

func (b *builder) complex(t reflect.Type, path string, depth int) *Complex {
	c := &Complex{typ: t}
	st := t
	if t.Kind() == reflect.Pointer {
		c.ptr = true
		st = t.Elem()
	}
	for _, f := range b.fields(st, path) {
		fPath := joinPath(path, f.GoName)
		p, err := b.build(f.Type, fPath, depth+1)
		if err != nil {
			b.drop(fPath, f.Type, err)
			continue
		}
		c.children = append(c.children, child{name: f.Name, index: f.Index, patcher: p})
	}
	slices.SortFunc(c.children, func(a, b child) int {
		return strings.Compare(a.name, b.name)
	})
	return c
}

// fields returns the serializable fields of st with duplicate names
// resolved: the shallowest field wins, and among fields at the same depth
// the first declared.
func (b *builder) fields(st reflect.Type, path string) []Field {
	all := Fields(st)
	minDepth := make(map[string]int, len(all))
	var res []Field
	for _, f := range all {
		if !b.cfg.serializable(f) {
			continue
		}
		if d, ok := minDepth[f.Name]; !ok || f.Depth < d {
			minDepth[f.Name] = f.Depth
		}
		res = append(res, f)
	}
	seen := make(map[string]bool, len(res))
	res = slices.DeleteFunc(res, func(f Field) bool {
		if seen[f.Name] || f.Depth != minDepth[f.Name] {
			b.drop(joinPath(path, f.GoName), f.Type, fmt.Errorf("%w: %q", ErrShadowed, f.Name))
			return true
		}
		seen[f.Name] = true
		return false
	})
	return res
}

func (b *builder) collection(t reflect.Type, path string, depth int) (Patcher, error) {
	et := t.Elem()
	kind, err := Classify(et)
	if err != nil {
		return nil, err
	}
	elem, err := b.build(et, path+"[]", depth+1)
	if err != nil {
		return nil, err
	}
	return &Collection{typ: t, elemKind: kind, elem: elem, maxCount: b.cfg.maxCount}, nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
