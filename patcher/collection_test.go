package patcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/objpatch/ir"
)

type lists struct {
	Ints   []int
	Arr    [3]string
	Points []Point
	Nested [][]string
}

func TestCollectionExtract(t *testing.T) {
	p := mustNew[lists](t)
	n := p.ExtractValue(lists{
		Ints:   []int{4, 5},
		Nested: [][]string{{"a"}},
	})
	want := ir.FromFields("",
		ir.FromSlice("Arr", ir.StringType, []*ir.Node{
			ir.FromString("", ""), ir.FromString("", ""), ir.FromString("", ""),
		}),
		ir.FromSlice("Ints", ir.IntType, []*ir.Node{ir.FromInt("", 4), ir.FromInt("", 5)}),
		ir.FromSlice("Nested", ir.ComplexType, []*ir.Node{
			ir.FromSlice("", ir.StringType, []*ir.Node{ir.FromString("", "a")}),
		}),
		ir.NullCollection("Points", ir.ComplexType),
	)
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("ExtractValue() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionAllocate(t *testing.T) {
	p := mustNew[lists](t)
	var l lists
	patch := ir.FromFields("",
		ir.FromElements("Ints", ir.IntType, 5,
			ir.FromInt("1", 10),
			ir.FromInt("3", 30),
		),
	)
	if err := p.ApplyTo(patch, &l); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if diff := cmp.Diff([]int{0, 10, 0, 30, 0}, l.Ints); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}

	var empty lists
	if err := p.ApplyTo(ir.FromFields("", ir.FromElements("Ints", ir.IntType, 0)), &empty); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if empty.Ints == nil || len(empty.Ints) != 0 {
		t.Errorf("Ints = %#v, want empty non-nil slice", empty.Ints)
	}
}

func TestCollectionExisting(t *testing.T) {
	p := mustNew[lists](t)
	l := lists{
		Ints:   []int{1, 2},
		Arr:    [3]string{"a", "b", "c"},
		Points: []Point{{X: 1, Y: 1}},
	}
	patch := ir.FromFields("",
		ir.FromElements("Arr", ir.StringType, 3,
			ir.FromString("2", "C"),
			ir.FromString("3", "D"),
		),
		ir.FromElements("Ints", ir.IntType, 10,
			ir.FromInt("0", 7),
			ir.FromInt("5", 9),
			ir.FromInt("x", 9),
		),
		ir.FromElements("Points", ir.ComplexType, 1,
			ir.FromFields("0", ir.FromInt("y", 5)),
		),
	)
	if err := p.ApplyTo(patch, &l); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	want := lists{
		Ints:   []int{7, 2},
		Arr:    [3]string{"a", "b", "C"},
		Points: []Point{{X: 1, Y: 5}},
	}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("ApplyTo() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionNested(t *testing.T) {
	p := mustNew[lists](t)
	var l lists
	patch := ir.FromFields("",
		ir.FromElements("Nested", ir.ComplexType, 2,
			ir.FromElements("1", ir.StringType, 2, ir.FromString("1", "z")),
		),
	)
	if err := p.ApplyTo(patch, &l); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	want := [][]string{nil, {"", "z"}}
	if diff := cmp.Diff(want, l.Nested); diff != "" {
		t.Errorf("Nested mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionCountLimit(t *testing.T) {
	p := mustNew[lists](t, WithMaxCount(8))
	var l lists
	patch := ir.FromFields("",
		ir.FromElements("Ints", ir.IntType, 1<<62, ir.FromInt("0", 1)),
		ir.FromElements("Nested", ir.ComplexType, 9),
		ir.FromElements("Points", ir.ComplexType, 8),
	)
	if err := p.ApplyTo(patch, &l); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if l.Ints != nil || l.Nested != nil {
		t.Errorf("over-limit counts allocated: Ints len %d, Nested len %d", len(l.Ints), len(l.Nested))
	}
	if len(l.Points) != 8 {
		t.Errorf("len(Points) = %d, want 8", len(l.Points))
	}

	// the default limit applies too
	var d lists
	if err := mustNew[lists](t).ApplyTo(patch, &d); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if d.Ints != nil {
		t.Errorf("len(Ints) = %d, want nil slice", len(d.Ints))
	}
}

func TestCollectionNonCanonicalIndex(t *testing.T) {
	p := mustNew[lists](t)
	l := lists{Ints: []int{1, 2, 3}}
	patch := ir.FromFields("",
		ir.FromElements("Ints", ir.IntType, 3,
			ir.FromInt("+1", 8),
			ir.FromInt("02", 9),
		),
	)
	if err := p.ApplyTo(patch, &l); err != nil {
		t.Fatalf("ApplyTo() error = %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, l.Ints); diff != "" {
		t.Errorf("Ints mismatch (-want +got):\n%s", diff)
	}
}
