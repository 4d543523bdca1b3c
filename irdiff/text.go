package irdiff

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/objpatch/format"
	"github.com/signadot/objpatch/ir"
)

// TextDiff returns a line diff of the dumps of a and b, with removed lines
// prefixed by "-", added lines by "+" and common lines by a space. It
// returns "" if the dumps are identical.
func TextDiff(a, b *ir.Node, colors bool) string {
	at, bt := dump(a), dump(b)
	if at == bt {
		return ""
	}
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	del, ins := fmtFunc(colors, color.FgRed), fmtFunc(colors, color.FgGreen)
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(del("-" + line))
			case diffpatch.DiffInsert:
				buf.WriteString(ins("+" + line))
			default:
				buf.WriteString(" " + line)
			}
		}
	}
	return buf.String()
}

func dump(n *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if n == nil {
		return ""
	}
	if err := format.Dump(buf, sorted(n), nil); err != nil {
		return err.Error()
	}
	return buf.String()
}

func fmtFunc(colors bool, attr color.Attribute) func(string) string {
	if !colors {
		return func(s string) string { return s }
	}
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string {
		body, nl := strings.CutSuffix(s, "\n")
		if nl {
			return c.Sprint(body) + "\n"
		}
		return c.Sprint(body)
	}
}
