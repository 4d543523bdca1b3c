package patcher

import (
	"errors"
	"math"
	"net/netip"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/objpatch/ir"
)

type level int

type hexText []byte

func (h hexText) MarshalText() ([]byte, error) { return []byte("x" + string(h)), nil }

func (h *hexText) UnmarshalText(d []byte) error {
	if len(d) == 0 || d[0] != 'x' {
		return errors.New("missing x")
	}
	*h = append((*h)[:0], d[1:]...)
	return nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		typ     reflect.Type
		want    ir.Type
		wantErr bool
	}{
		{typ: reflect.TypeFor[bool](), want: ir.BoolType},
		{typ: reflect.TypeFor[int8](), want: ir.IntType},
		{typ: reflect.TypeFor[level](), want: ir.IntType},
		{typ: reflect.TypeFor[uint](), want: ir.UintType},
		{typ: reflect.TypeFor[uintptr](), want: ir.UintType},
		{typ: reflect.TypeFor[float32](), want: ir.FloatType},
		{typ: reflect.TypeFor[string](), want: ir.StringType},
		{typ: reflect.TypeFor[*string](), want: ir.StringType},
		{typ: reflect.TypeFor[time.Time](), want: ir.StringType},
		{typ: reflect.TypeFor[*time.Time](), want: ir.StringType},
		{typ: reflect.TypeFor[netip.Addr](), want: ir.StringType},
		{typ: reflect.TypeFor[hexText](), want: ir.StringType},
		{typ: reflect.TypeFor[Point](), want: ir.ComplexType},
		{typ: reflect.TypeFor[*Point](), want: ir.ComplexType},
		{typ: reflect.TypeFor[[]int](), want: ir.ComplexType},
		{typ: reflect.TypeFor[[2]string](), want: ir.ComplexType},
		{typ: nil, wantErr: true},
		{typ: reflect.TypeFor[*int](), wantErr: true},
		{typ: reflect.TypeFor[**Point](), wantErr: true},
		{typ: reflect.TypeFor[*[]int](), wantErr: true},
		{typ: reflect.TypeFor[map[string]int](), wantErr: true},
		{typ: reflect.TypeFor[any](), wantErr: true},
		{typ: reflect.TypeFor[chan int](), wantErr: true},
		{typ: reflect.TypeFor[func()](), wantErr: true},
		{typ: reflect.TypeFor[complex64](), wantErr: true},
	}
	for _, tt := range tests {
		got, err := Classify(tt.typ)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("Classify(%v) error = %v, want ErrUnsupported", tt.typ, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%v) error = %v", tt.typ, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.typ, got, tt.want)
		}
	}
	if isCollection(reflect.TypeFor[hexText]()) {
		t.Error("text slice classified as collection")
	}
}

func TestPrimitiveExtract(t *testing.T) {
	s := "s"
	tests := []struct {
		name string
		v    any
		want *ir.Node
	}{
		{"bool", true, ir.FromBool("f", true)},
		{"int", level(-3), ir.FromInt("f", -3)},
		{"uint", uint16(7), ir.FromUint("f", 7)},
		{"float", 2.5, ir.FromFloat("f", 2.5)},
		{"string", "v", ir.FromString("f", "v")},
		{"ptr string", &s, ir.FromString("f", "s")},
		{"nil string", (*string)(nil), ir.NullString("f")},
		{"text", hexText("ab"), ir.FromString("f", "xab")},
		{"addr", netip.MustParseAddr("10.0.0.1"), ir.FromString("f", "10.0.0.1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reflect.ValueOf(tt.v)
			kind, err := Classify(v.Type())
			if err != nil {
				t.Fatal(err)
			}
			p := newPrimitive(v.Type(), kind)
			if diff := cmp.Diff(tt.want, p.Extract("f", v)); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimitiveAbsent(t *testing.T) {
	ip := newPrimitive(reflect.TypeFor[int](), ir.IntType)
	if n := ip.Extract("f", reflect.Value{}); n != nil {
		t.Errorf("Extract(invalid int) = %v, want nil", n)
	}
	if got := ip.Apply(ir.FromInt("f", 1), reflect.Value{}); got.IsValid() {
		t.Errorf("Apply(int, invalid) = %v, want invalid", got)
	}
	// a value of another kind at run time
	if n := ip.Extract("f", reflect.ValueOf("str")); n != nil {
		t.Errorf("Extract(mismatched) = %v, want nil", n)
	}

	sp := newPrimitive(reflect.TypeFor[string](), ir.StringType)
	if diff := cmp.Diff(ir.NullString("f"), sp.Extract("f", reflect.Value{})); diff != "" {
		t.Errorf("Extract(invalid string) mismatch (-want +got):\n%s", diff)
	}
	if got := sp.Apply(ir.FromString("f", "v"), reflect.Value{}); got.String() != "v" {
		t.Errorf("Apply(string, invalid) = %v, want v", got)
	}
}

func TestPrimitiveApply(t *testing.T) {
	tests := []struct {
		name string
		old  any
		n    *ir.Node
		want any
	}{
		{"bool", false, ir.FromBool("", true), true},
		{"int8", int8(1), ir.FromInt("", -128), int8(-128)},
		{"int8 overflow", int8(1), ir.FromInt("", 128), int8(1)},
		{"uint8 overflow", uint8(1), ir.FromUint("", 300), uint8(1)},
		{"float32", float32(1), ir.FromFloat("", 0.5), float32(0.5)},
		{"float32 overflow", float32(1), ir.FromFloat("", math.MaxFloat64), float32(1)},
		{"string", "a", ir.FromString("", "b"), "b"},
		{"null string", "a", ir.NullString(""), ""},
		{"null int", 3, &ir.Node{Type: ir.IntType, Null: true, Count: -1}, 3},
		{"kind mismatch", 3, ir.FromFloat("", 1), 3},
		{"collection node", "a", ir.FromElements("", ir.StringType, 0), "a"},
		{"nil node", 3, nil, 3},
		{"text", hexText("a"), ir.FromString("", "xbc"), hexText("bc")},
		{"bad text", hexText("a"), ir.FromString("", "bc"), hexText("a")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := reflect.ValueOf(tt.old)
			kind, err := Classify(old.Type())
			if err != nil {
				t.Fatal(err)
			}
			p := newPrimitive(old.Type(), kind)
			got := p.Apply(tt.n, old)
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimitiveApplyPointer(t *testing.T) {
	p := newPrimitive(reflect.TypeFor[*string](), ir.StringType)
	orig := "a"
	old := reflect.ValueOf(&orig)
	got := p.Apply(ir.FromString("", "b"), old).Interface().(*string)
	if *got != "b" {
		t.Errorf("Apply() = %q, want b", *got)
	}
	if got == &orig || orig != "a" {
		t.Error("Apply() wrote through the old pointer")
	}
	if got := p.Apply(ir.NullString(""), old); !got.IsNil() {
		t.Errorf("Apply(null) = %v, want nil", got)
	}
}
