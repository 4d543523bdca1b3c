package patcher

import "reflect"

// container gives arrays and slices one indexed interface.
type container struct {
	v reflect.Value
}

// makeContainer returns a new container of type t holding n zero elements.
// Arrays always have their declared length.
func makeContainer(t reflect.Type, n int) reflect.Value {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, n, n)
	case reflect.Array:
		return reflect.New(t).Elem()
	}
	return reflect.Value{}
}

// asContainer reports whether v can be indexed and written.
func asContainer(v reflect.Value) (container, bool) {
	if !v.IsValid() {
		return container{}, false
	}
	switch v.Kind() {
	case reflect.Slice:
		return container{v: v}, !v.IsNil()
	case reflect.Array:
		return container{v: v}, v.CanSet()
	}
	return container{}, false
}

func isAbsent(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.IsNil()
}

func (c container) Len() int {
	return c.v.Len()
}

func (c container) Get(i int) reflect.Value {
	return c.v.Index(i)
}

func (c container) Set(i int, v reflect.Value) {
	c.v.Index(i).Set(v)
}
