package irdiff

import (
	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Diff returns a patch which turns from into to when merged, or nil if
// there is nothing to change. Neither argument is modified.
func Diff(from, to *ir.Node) *ir.Node {
	if to == nil {
		return nil
	}
	if from == nil {
		return to.Clone()
	}
	from, to = sorted(from), sorted(to)
	res := diff(from, to)
	if debug.Diff() {
		debug.Logf("diff\nfrom: %v\nto: %v\npatch: %v\n", from, to, res)
	}
	return res
}

func diff(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	if !sameShape(from, to) || from.Null || to.Null || !to.IsComplex() {
		return to.Clone()
	}
	if to.Collection {
		return diffCollection(from, to)
	}
	return diffObject(from, to)
}

func sameShape(a, b *ir.Node) bool {
	return a.Type == b.Type && a.Collection == b.Collection
}

func diffObject(from, to *ir.Node) *ir.Node {
	var children []*ir.Node
	i := 0
	for _, tc := range to.Children {
		for i < len(from.Children) && from.Children[i].Name < tc.Name {
			i++
		}
		if i < len(from.Children) && from.Children[i].Name == tc.Name {
			if d := diff(from.Children[i], tc); d != nil {
				children = append(children, d)
			}
			continue
		}
		children = append(children, tc.Clone())
	}
	if len(children) == 0 && from.Name == to.Name {
		return nil
	}
	return ir.FromFields(to.Name, children...)
}

func diffCollection(from, to *ir.Node) *ir.Node {
	fromByIndex := make(map[int]*ir.Node, len(from.Children))
	for _, c := range from.Children {
		if i := c.Index(); i >= 0 {
			fromByIndex[i] = c
		}
	}
	var children []*ir.Node
	for _, tc := range to.Children {
		i := tc.Index()
		if i < 0 {
			continue
		}
		fc, ok := fromByIndex[i]
		if !ok {
			children = append(children, tc.Clone())
			continue
		}
		if d := diff(fc, tc); d != nil {
			children = append(children, d)
		}
	}
	if len(children) == 0 && from.Count == to.Count && from.Name == to.Name {
		return nil
	}
	return ir.FromElements(to.Name, to.Type, to.Count, children...)
}

func sorted(n *ir.Node) *ir.Node {
	if ir.IsSorted(n) {
		return n
	}
	n = n.Clone()
	ir.Sort(n)
	return n
}
