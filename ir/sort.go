package ir

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

// Sort puts the children of n and all its descendants in canonical order:
// object children ascending by ordinal (byte-wise) name, collection children
// ascending by index. Collection children whose names are not indices are
// placed last in ordinal name order.
//
// Patchers merge object children against their own field order in a single
// pass, so trees built by hand must be sorted before they are applied.
func Sort(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		Sort(c)
	}
	slices.SortStableFunc(n.Children, childOrder(n))
}

func childOrder(n *Node) func(a, b *Node) int {
	if n.Collection {
		return compareIndexNames
	}
	return compareNames
}

func compareNames(a, b *Node) int {
	return strings.Compare(a.Name, b.Name)
}

func compareIndexNames(a, b *Node) int {
	ai, bi := a.Index(), b.Index()
	switch {
	case ai >= 0 && bi >= 0:
		return cmp.Compare(ai, bi)
	case ai >= 0:
		return -1
	case bi >= 0:
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

var errUnsorted = errors.New("unsorted")

// IsSorted reports whether n and its descendants are in the order produced
// by Sort.
func IsSorted(n *Node) bool {
	if n == nil {
		return true
	}
	err := n.Visit(func(x *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if !slices.IsSortedFunc(x.Children, childOrder(x)) {
			return false, errUnsorted
		}
		return true, nil
	})
	return err == nil
}
