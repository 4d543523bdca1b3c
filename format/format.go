package format

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/objpatch/ir"
)

var (
	// ErrBadFormat is returned by ByName for unknown format names.
	ErrBadFormat = errors.New("bad format")

	// ErrWireForm is returned when decoded data is not a valid wire form.
	ErrWireForm = errors.New("invalid wire form")

	// ErrEncodeOnly is returned by Decode of formats which cannot be read
	// back.
	ErrEncodeOnly = errors.New("format is encode only")
)

// Formatter reads and writes node trees in one format.
type Formatter interface {
	Name() string
	Encode(w io.Writer, n *ir.Node) error
	Decode(r io.Reader) (*ir.Node, error)
}

// ByName returns the formatter called name: "json" ("j"), "yaml" ("y") or
// "dump" ("d"). The dump formatter returned is not colored.
func ByName(name string) (Formatter, error) {
	switch name {
	case "json", "j":
		return JSON(), nil
	case "yaml", "y":
		return YAML(), nil
	case "dump", "d":
		return Text(nil), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadFormat, name)
}

// Names lists the canonical formatter names.
func Names() []string {
	return []string{"json", "yaml", "dump"}
}

type wireNode struct {
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type       ir.Type     `json:"type" yaml:"type"`
	Null       bool        `json:"null,omitempty" yaml:"null,omitempty"`
	Collection bool        `json:"collection,omitempty" yaml:"collection,omitempty"`
	Count      *int        `json:"count,omitempty" yaml:"count,omitempty"`
	Value      any         `json:"value,omitempty" yaml:"value,omitempty"`
	Children   []*wireNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toWire(n *ir.Node) *wireNode {
	w := &wireNode{
		Name:       n.Name,
		Type:       n.Type,
		Null:       n.Null,
		Collection: n.Collection,
	}
	if n.Count != -1 {
		c := n.Count
		w.Count = &c
	}
	if !n.IsComplex() && !n.Null {
		w.Value = wireValue(n)
	}
	if len(n.Children) != 0 {
		w.Children = make([]*wireNode, len(n.Children))
		for i, c := range n.Children {
			w.Children[i] = toWire(c)
		}
	}
	return w
}

func wireValue(n *ir.Node) any {
	switch n.Type {
	case ir.BoolType:
		return n.Bool
	case ir.IntType:
		return n.Int64
	case ir.UintType:
		return n.Uint64
	case ir.FloatType:
		if math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
			return strconv.FormatFloat(n.Float64, 'g', -1, 64)
		}
		return n.Float64
	case ir.StringType:
		return n.String
	}
	return nil
}

func fromWire(w *wireNode, path string) (*ir.Node, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: missing node at %s", ErrWireForm, path)
	}
	n := &ir.Node{
		Name:       w.Name,
		Type:       w.Type,
		Null:       w.Null,
		Collection: w.Collection,
		Count:      -1,
	}
	if w.Count != nil {
		n.Count = *w.Count
	}
	if w.Value != nil {
		if n.IsComplex() {
			return nil, fmt.Errorf("%w: value on complex node at %s", ErrWireForm, path)
		}
		if err := setValue(n, w.Value); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrWireForm, path, err)
		}
	}
	if len(w.Children) != 0 {
		if !n.IsComplex() {
			return nil, fmt.Errorf("%w: children on leaf at %s", ErrWireForm, path)
		}
		n.Children = make([]*ir.Node, len(w.Children))
		for i, c := range w.Children {
			cn, err := fromWire(c, path+"/"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			n.Children[i] = cn
		}
	}
	return n, nil
}

// setValue stores a decoded scalar. Decoders produce different Go types for
// numbers, so numbers go through their text form.
func setValue(n *ir.Node, v any) error {
	var err error
	switch n.Type {
	case ir.BoolType:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%v is not a bool", v)
		}
		n.Bool = b
	case ir.IntType:
		n.Int64, err = strconv.ParseInt(fmt.Sprint(v), 10, 64)
	case ir.UintType:
		n.Uint64, err = strconv.ParseUint(fmt.Sprint(v), 10, 64)
	case ir.FloatType:
		n.Float64, err = strconv.ParseFloat(fmt.Sprint(v), 64)
	case ir.StringType:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%v is not a string", v)
		}
		n.String = s
	}
	return err
}
