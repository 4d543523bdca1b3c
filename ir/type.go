package ir

import "fmt"

// Type is the kind tag carried by every node.
//
// Leaf nodes carry one of the primitive kinds. Object-shaped complex nodes
// carry ComplexType. Collection-shaped nodes carry the kind of their
// elements, so a []int field is tagged IntType while still having children.
type Type int

const (
	BoolType Type = iota
	IntType
	UintType
	FloatType
	StringType
	ComplexType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BoolType:    "Bool",
		IntType:     "Int",
		UintType:    "Uint",
		FloatType:   "Float",
		StringType:  "String",
		ComplexType: "Complex",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Bool":    BoolType,
		"Int":     IntType,
		"Uint":    UintType,
		"Float":   FloatType,
		"String":  StringType,
		"Complex": ComplexType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		BoolType,
		IntType,
		UintType,
		FloatType,
		StringType,
		ComplexType,
	}
}

// IsLeaf reports whether t is a primitive kind.
func (t Type) IsLeaf() bool {
	switch t {
	case ComplexType:
		return false
	default:
		return true
	}
}
