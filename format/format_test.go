package format

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/objpatch/ir"
)

func sampleTree() *ir.Node {
	return ir.FromFields("",
		ir.FromBool("b", true),
		ir.FromInt("i", math.MinInt64),
		ir.FromUint("u", math.MaxUint64),
		ir.FromFloat("f", 0.1),
		ir.FromFloat("f2", 2),
		ir.FromFloat("inf", math.Inf(1)),
		ir.FromString("s", "hello\nworld"),
		ir.FromString("s0", ""),
		ir.FromString("snum", "123"),
		ir.FromString("strue", "true"),
		ir.NullString("sn"),
		ir.NullObject("obj"),
		ir.FromFields("empty"),
		ir.NullCollection("nc", ir.IntType),
		ir.FromElements("ec", ir.StringType, 0),
		ir.FromElements("sparse", ir.ComplexType, 4,
			ir.FromFields("1", ir.FromInt("x", 0)),
			ir.NullObject("3"),
		),
	)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Formatter{JSON(), YAML()} {
		t.Run(f.Name(), func(t *testing.T) {
			in := sampleTree()
			buf := bytes.NewBuffer(nil)
			if err := f.Encode(buf, in); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			out, err := f.Decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v\n%s", err, buf.String())
			}
			if !ir.Equal(in, out) {
				want, got := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
				Dump(want, in, nil)
				Dump(got, out, nil)
				t.Errorf("round trip mismatch\nwant:\n%s\ngot:\n%s\nencoded:\n%s", want, got, buf)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad type", `{"type": "Map"}`},
		{"value on object", `{"type": "Complex", "value": 1}`},
		{"children on leaf", `{"type": "Int", "children": [{"type": "Int"}]}`},
		{"bad int", `{"type": "Int", "value": "x"}`},
		{"bad bool", `{"type": "Bool", "value": 1}`},
		{"bad string", `{"type": "String", "value": 1}`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := JSON().Decode(strings.NewReader(tt.in)); err == nil {
				t.Errorf("Decode(%q) expected error", tt.in)
			}
		})
	}
	_, err := UnmarshalJSON([]byte(`{"type": "Complex", "value": 1}`))
	if !errors.Is(err, ErrWireForm) {
		t.Errorf("UnmarshalJSON() error = %v, want ErrWireForm", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "j", "yaml", "y", "dump", "d"} {
		f, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) error = %v", name, err)
			continue
		}
		if !strings.HasPrefix(f.Name(), name) {
			t.Errorf("ByName(%q).Name() = %q", name, f.Name())
		}
	}
	if _, err := ByName("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ByName(xml) error = %v, want ErrBadFormat", err)
	}
	if _, err := Text(nil).Decode(strings.NewReader("{}")); !errors.Is(err, ErrEncodeOnly) {
		t.Errorf("Text().Decode() error = %v, want ErrEncodeOnly", err)
	}
}

func TestDump(t *testing.T) {
	n := ir.FromFields("",
		ir.FromString("Name", "x"),
		ir.FromElements("Tags", ir.StringType, 3,
			ir.FromString("0", "a"),
			ir.NullString("2"),
		),
		ir.FromFloat("f", 1),
		ir.FromUint("u", 2),
		ir.NullObject("Next"),
		ir.FromFields("a b"),
		ir.NullCollection("nc", ir.IntType),
	)
	want := `{
  Name: "x"
  Tags: []String(3) {
    0: "a"
    2: null
  }
  f: 1.0
  u: 2u
  Next: null{}
  "a b": {}
  nc: []Int null
}
`
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, n, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestApplyJSONPatch(t *testing.T) {
	n := ir.FromFields("", ir.FromInt("x", 1), ir.FromInt("y", 2))
	patch := `[
		{"op": "replace", "path": "/children/0/value", "value": 9},
		{"op": "remove", "path": "/children/1"}
	]`
	got, err := ApplyJSONPatch(n, []byte(patch))
	if err != nil {
		t.Fatalf("ApplyJSONPatch() error = %v", err)
	}
	want := ir.FromFields("", ir.FromInt("x", 9))
	if !ir.Equal(want, got) {
		t.Errorf("ApplyJSONPatch() = %+v, want %+v", got, want)
	}
	if n.Children[0].Int64 != 1 {
		t.Error("ApplyJSONPatch() modified its input")
	}

	if _, err := ApplyJSONPatch(n, []byte(`{`)); err == nil {
		t.Error("expected error for bad patch")
	}
	bad := `[{"op": "replace", "path": "/children/7/value", "value": 9}]`
	if _, err := ApplyJSONPatch(n, []byte(bad)); err == nil {
		t.Error("expected error for missing path")
	}
}
