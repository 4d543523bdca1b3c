package irdiff

import (
	"github.com/signadot/objpatch/debug"
	"github.com/signadot/objpatch/ir"
)

// Match reports whether doc already satisfies patch, that is whether
// merging patch into doc would leave it unchanged.
func Match(doc, patch *ir.Node) bool {
	if patch == nil {
		return true
	}
	if doc == nil {
		return false
	}
	res := match(sorted(doc), sorted(patch))
	if debug.Diff() {
		debug.Logf("match %q: %t\n", patch.Name, res)
	}
	return res
}

func match(doc, patch *ir.Node) bool {
	if !sameShape(doc, patch) || patch.Null || doc.Null || !patch.IsComplex() {
		return ir.SameContent(doc, patch)
	}
	if patch.Collection {
		return matchCollection(doc, patch)
	}
	return matchObject(doc, patch)
}

func matchObject(doc, patch *ir.Node) bool {
	i := 0
	for _, pc := range patch.Children {
		for i < len(doc.Children) && doc.Children[i].Name < pc.Name {
			i++
		}
		if i == len(doc.Children) || doc.Children[i].Name != pc.Name {
			return false
		}
		if !match(doc.Children[i], pc) {
			return false
		}
	}
	return true
}

func matchCollection(doc, patch *ir.Node) bool {
	if doc.Count != patch.Count {
		return false
	}
	byIndex := make(map[int]*ir.Node, len(doc.Children))
	for _, c := range doc.Children {
		byIndex[c.Index()] = c
	}
	for _, pc := range patch.Children {
		i := pc.Index()
		if i < 0 || i >= patch.Count {
			continue
		}
		dc, ok := byIndex[i]
		if !ok || !match(dc, pc) {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc restricted to the object fields and collection
// elements named in pattern. Leaves, nulls and shape mismatches are copied
// whole.
func Trim(pattern, doc *ir.Node) *ir.Node {
	if doc == nil || pattern == nil || !sameShape(doc, pattern) || doc.Null || pattern.Null || !doc.IsComplex() {
		return doc.Clone()
	}
	byName := make(map[string]*ir.Node, len(pattern.Children))
	for _, c := range pattern.Children {
		byName[c.Name] = c
	}
	res := *doc
	res.Children = nil
	for _, c := range doc.Children {
		pc, ok := byName[c.Name]
		if !ok {
			continue
		}
		res.Children = append(res.Children, Trim(pc, c))
	}
	return &res
}
