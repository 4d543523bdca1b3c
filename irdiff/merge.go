package irdiff

import (
	"maps"
	"slices"

	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Merge returns a new tree with patch merged into base.
//
// Objects are merged child by child and keep children the patch does not
// name. Collections take the patch's count, dropping elements past it, and
// merge elements by index. Leaves, nulls and nodes whose kind or shape
// differs from base replace it.
func Merge(base, patch *ir.Node) *ir.Node {
	if patch == nil {
		return base.Clone()
	}
	if base == nil {
		return patch.Clone()
	}
	res := merge(sorted(base), sorted(patch))
	if debug.Diff() {
		debug.Logf("merge\nbase: %v\npatch: %v\nresult: %v\n", base, patch, res)
	}
	return res
}

func merge(base, patch *ir.Node) *ir.Node {
	if !sameShape(base, patch) || patch.Null || !patch.IsComplex() {
		return patch.Clone()
	}
	if patch.Collection {
		return mergeCollection(base, patch)
	}
	return mergeObject(base, patch)
}

func mergeObject(base, patch *ir.Node) *ir.Node {
	res := ir.FromFields(patch.Name)
	var bc []*ir.Node
	if !base.Null {
		bc = base.Children
	}
	i, j := 0, 0
	for i < len(bc) || j < len(patch.Children) {
		switch {
		case j == len(patch.Children):
			res.Children = append(res.Children, bc[i].Clone())
			i++
		case i == len(bc) || patch.Children[j].Name < bc[i].Name:
			res.Children = append(res.Children, patch.Children[j].Clone())
			j++
		case bc[i].Name < patch.Children[j].Name:
			res.Children = append(res.Children, bc[i].Clone())
			i++
		default:
			res.Children = append(res.Children, merge(bc[i], patch.Children[j]))
			i++
			j++
		}
	}
	return res
}

func mergeCollection(base, patch *ir.Node) *ir.Node {
	res := ir.FromElements(patch.Name, patch.Type, patch.Count)
	byIndex := make(map[int]*ir.Node, len(base.Children))
	if !base.Null {
		for _, c := range base.Children {
			if i := c.Index(); i >= 0 && i < patch.Count {
				byIndex[i] = c.Clone()
			}
		}
	}
	for _, pc := range patch.Children {
		i := pc.Index()
		if i < 0 || i >= patch.Count {
			if debug.Diff() {
				debug.Logf("merge: skipping element %q of %q (count %d)\n", pc.Name, patch.Name, patch.Count)
			}
			continue
		}
		if bc, ok := byIndex[i]; ok {
			byIndex[i] = merge(bc, pc)
			continue
		}
		byIndex[i] = pc.Clone()
	}
	for _, i := range slices.Sorted(maps.Keys(byIndex)) {
		res.Children = append(res.Children, byIndex[i])
	}
	return res
}
