package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Names are compared first, then shape, then values. Children are compared
// pairwise in order.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return compareContent(a, b)
}

func compareContent(a, b *Node) int {
	if c := cmp.Compare(shapeRank(a), shapeRank(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if a.Null != b.Null {
		if a.Null {
			return -1
		}
		return 1
	}
	if a.Null {
		return 0
	}
	if a.IsComplex() {
		if a.Collection {
			if c := cmp.Compare(a.Count, b.Count); c != 0 {
				return c
			}
		}
		return compareChildren(a.Children, b.Children)
	}
	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case UintType:
		return cmp.Compare(a.Uint64, b.Uint64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	}
	return 0
}

// shapeRank orders leaves < objects < collections.
func shapeRank(n *Node) int {
	switch {
	case n.Collection:
		return 2
	case n.Type == ComplexType:
		return 1
	default:
		return 0
	}
}

func compareChildren(a, b []*Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Equal reports whether a and b are the same tree.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// SameContent reports whether a and b are the same tree, ignoring the names
// of a and b themselves.
func SameContent(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return compareContent(a, b) == 0
}
