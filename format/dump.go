package format

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/objpatch/ir"
)

// Dump writes a human readable rendering of n to w, colored with c if c is
// not nil.
//
//	{
//	  Name: "x"
//	  Tags: []String(3) {
//	    0: "a"
//	    2: null
//	  }
//	  Next: null{}
//	}
func Dump(w io.Writer, n *ir.Node, c *Colors) error {
	bw := bufio.NewWriter(w)
	d := &dumper{w: bw, c: c}
	d.node(n, 0, false)
	bw.WriteByte('\n')
	return bw.Flush()
}

type dumper struct {
	w *bufio.Writer
	c *Colors
}

func (d *dumper) node(n *ir.Node, depth int, named bool) {
	if n == nil {
		d.w.WriteString("<nil>")
		return
	}
	if named {
		d.w.WriteString(d.c.Color(n.Type, FieldColor, dumpName(n.Name)))
		d.w.WriteString(d.c.Color(n.Type, SepColor, ":"))
		d.w.WriteByte(' ')
	}
	switch {
	case n.Collection:
		d.w.WriteString(d.c.Color(n.Type, KindColor, "[]"+n.Type.String()))
		if n.Null {
			d.w.WriteByte(' ')
			d.w.WriteString(d.c.Color(n.Type, NullColor, "null"))
			return
		}
		d.w.WriteString(d.c.Color(n.Type, KindColor, "("+strconv.Itoa(n.Count)+")"))
		d.w.WriteByte(' ')
		d.children(n, depth)
	case n.Type == ir.ComplexType:
		if n.Null {
			d.w.WriteString(d.c.Color(n.Type, NullColor, "null{}"))
			return
		}
		d.children(n, depth)
	case n.Null:
		d.w.WriteString(d.c.Color(n.Type, NullColor, "null"))
	default:
		d.w.WriteString(d.c.Color(n.Type, ValueColor, leafText(n)))
	}
}

func (d *dumper) children(n *ir.Node, depth int) {
	d.w.WriteString(d.c.Color(ir.ComplexType, SepColor, "{"))
	if len(n.Children) == 0 {
		d.w.WriteString(d.c.Color(ir.ComplexType, SepColor, "}"))
		return
	}
	d.w.WriteByte('\n')
	for _, c := range n.Children {
		d.indent(depth + 1)
		d.node(c, depth+1, true)
		d.w.WriteByte('\n')
	}
	d.indent(depth)
	d.w.WriteString(d.c.Color(ir.ComplexType, SepColor, "}"))
}

func (d *dumper) indent(depth int) {
	d.w.WriteString(strings.Repeat("  ", depth))
}

func leafText(n *ir.Node) string {
	switch n.Type {
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.IntType:
		return strconv.FormatInt(n.Int64, 10)
	case ir.UintType:
		return strconv.FormatUint(n.Uint64, 10) + "u"
	case ir.FloatType:
		s := strconv.FormatFloat(n.Float64, 'g', -1, 64)
		if math.IsInf(n.Float64, 0) || math.IsNaN(n.Float64) || strings.ContainsAny(s, ".e") {
			return s
		}
		return s + ".0"
	case ir.StringType:
		return strconv.Quote(n.String)
	}
	return "?"
}

func dumpName(name string) string {
	if name == "" {
		return `""`
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return strconv.Quote(name)
		}
	}
	return name
}

type textFormat struct {
	c *Colors
}

// Text returns the dump formatter. Its Decode always fails with
// ErrEncodeOnly.
func Text(c *Colors) Formatter { return textFormat{c: c} }

func (textFormat) Name() string { return "dump" }

func (f textFormat) Encode(w io.Writer, n *ir.Node) error {
	return Dump(w, n, f.c)
}

func (textFormat) Decode(io.Reader) (*ir.Node, error) {
	return nil, ErrEncodeOnly
}
