package patcher

import (
	"reflect"
	"strings"
	"sync"
)

// TagKey is the struct tag key read by the default field rules.
//
//	Name string `objpatch:"name"`  // node name "name"
//	Skip string `objpatch:"-"`     // never serialized
const TagKey = "objpatch"

// Field describes a struct field at build time.
type Field struct {
	// Name is the node name: the tag name if present, else the Go name.
	Name string
	// GoName is the Go field name.
	GoName string
	// Type is the declared field type.
	Type reflect.Type
	// Index is the reflect index path, through embedded structs.
	Index []int
	// Tag is the field's struct tag.
	Tag reflect.StructTag
	// Depth is the embedding depth, 0 for fields declared on the type itself.
	Depth int
	// Exported reports whether the Go field is exported.
	Exported bool
}

// FieldPredicate decides whether a field takes part in serialization.
type FieldPredicate func(Field) bool

// IsSerializable is the default predicate: exported fields not tagged
// `objpatch:"-"`.
func IsSerializable(f Field) bool {
	if !f.Exported {
		return false
	}
	return f.Tag.Get(TagKey) != "-"
}

var fieldCache sync.Map // reflect.Type -> []Field

// Fields returns every field of the struct type t, including fields of
// embedded structs, in declaration order. Embedded (non-pointer) structs are
// flattened in place; their own entry is not listed. Results are cached per
// type and must not be modified.
func Fields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}
	fields := appendFields(nil, t, nil, 0)
	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]Field)
}

func appendFields(dst []Field, t reflect.Type, index []int, depth int) []Field {
	for i := range t.NumField() {
		sf := t.Field(i)
		fIndex := make([]int, len(index)+1)
		copy(fIndex, index)
		fIndex[len(index)] = i

		name, _, _ := strings.Cut(sf.Tag.Get(TagKey), ",")
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && name == "" && !isText(sf.Type) {
			dst = appendFields(dst, sf.Type, fIndex, depth+1)
			continue
		}
		if name == "" || name == "-" {
			name = sf.Name
		}
		dst = append(dst, Field{
			Name:     name,
			GoName:   sf.Name,
			Type:     sf.Type,
			Index:    fIndex,
			Tag:      sf.Tag,
			Depth:    depth,
			Exported: sf.IsExported(),
		})
	}
	return dst
}
