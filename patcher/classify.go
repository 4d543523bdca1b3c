package patcher

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/signadot/objpatch/ir"
)

var (
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Classify maps a Go type to its node kind.
//
// Types whose pointer implements both encoding.TextMarshaler and
// encoding.TextUnmarshaler are strings. Structs, arrays and slices are
// complex. Only nullable kinds may be reached through a pointer: *string,
// pointers to text types and pointers to structs. Maps, channels,
// functions, interfaces, complex numbers and pointers to any other type are
// not supported.
func Classify(t reflect.Type) (ir.Type, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil type", ErrUnsupported)
	}
	if t.Kind() == reflect.Pointer {
		return classifyPointer(t)
	}
	if isText(t) {
		return ir.StringType, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return ir.BoolType, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.IntType, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.UintType, nil
	case reflect.Float32, reflect.Float64:
		return ir.FloatType, nil
	case reflect.String:
		return ir.StringType, nil
	case reflect.Struct, reflect.Slice, reflect.Array:
		return ir.ComplexType, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupported, t)
}

func classifyPointer(t reflect.Type) (ir.Type, error) {
	base := t.Elem()
	if isText(base) {
		return ir.StringType, nil
	}
	switch base.Kind() {
	case reflect.String:
		return ir.StringType, nil
	case reflect.Struct:
		return ir.ComplexType, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupported, t)
}

func isText(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(textMarshalerType) && pt.Implements(textUnmarshalerType)
}

func isCollection(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return !isText(t)
	}
	return false
}
