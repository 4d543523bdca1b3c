package ir

import (
	"strconv"
)

// Node is a serialization-neutral value.
//
// Node is a tagged union: which value field is meaningful depends on Type
// and Collection. Leaves use exactly one of Bool, Int64, Uint64, Float64 or
// String. Complex nodes (objects and collections) use Children.
type Node struct {
	Name       string
	Type       Type
	Null       bool
	Collection bool
	Count      int
	Children   []*Node

	Bool    bool
	Int64   int64
	Uint64  uint64
	Float64 float64
	String  string
}

// IsComplex reports whether the node has children, either as an object or
// as a collection.
func (n *Node) IsComplex() bool {
	return n.Collection || !n.Type.IsLeaf()
}

// IsObject reports whether the node is an object-shaped complex node.
func (n *Node) IsObject() bool {
	return n.Type == ComplexType && !n.Collection
}

// Named sets the node's name and returns the node.
func (n *Node) Named(name string) *Node {
	n.Name = name
	return n
}

func FromBool(name string, v bool) *Node {
	return &Node{Name: name, Type: BoolType, Bool: v, Count: -1}
}

func FromInt(name string, v int64) *Node {
	return &Node{Name: name, Type: IntType, Int64: v, Count: -1}
}

func FromUint(name string, v uint64) *Node {
	return &Node{Name: name, Type: UintType, Uint64: v, Count: -1}
}

func FromFloat(name string, v float64) *Node {
	return &Node{Name: name, Type: FloatType, Float64: v, Count: -1}
}

func FromString(name, v string) *Node {
	return &Node{Name: name, Type: StringType, String: v, Count: -1}
}

// NullString is the only null primitive.
func NullString(name string) *Node {
	return &Node{Name: name, Type: StringType, Null: true, Count: -1}
}

// FromFields creates an object node. The children are kept in the given
// order; callers applying the result to a typed value must supply them in
// ascending ordinal name order (see Sort).
func FromFields(name string, children ...*Node) *Node {
	return &Node{Name: name, Type: ComplexType, Count: -1, Children: children}
}

func NullObject(name string) *Node {
	return &Node{Name: name, Type: ComplexType, Null: true, Count: -1}
}

// FromElements creates a collection node of the given element kind with
// count declared elements. Children are named by their decimal index and need
// not cover every index.
func FromElements(name string, elem Type, count int, children ...*Node) *Node {
	return &Node{
		Name:       name,
		Type:       elem,
		Collection: true,
		Count:      count,
		Children:   children,
	}
}

// FromSlice creates a dense collection node, naming each child by its
// position.
func FromSlice(name string, elem Type, elts []*Node) *Node {
	for i, e := range elts {
		elts[i] = e.Named(strconv.Itoa(i))
	}
	return FromElements(name, elem, len(elts), elts...)
}

func NullCollection(name string, elem Type) *Node {
	return &Node{Name: name, Type: elem, Collection: true, Null: true, Count: -1}
}

// Child returns the child named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Index parses the node's name as a collection index. It returns -1 unless
// the name is a canonical non-negative decimal integer: no sign and no
// leading zeros.
func (n *Node) Index() int {
	i, err := strconv.Atoi(n.Name)
	if err != nil || i < 0 || strconv.Itoa(i) != n.Name {
		return -1
	}
	return i
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := *n
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			res.Children[i] = c.Clone()
		}
	}
	return &res
}

// Visit calls f on n before and after its children. Children are visited
// only if the pre-order call returns true, and the first error stops the
// walk.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
