package ir

import (
	"testing"
)

func names(n *Node) []string {
	res := make([]string, len(n.Children))
	for i, c := range n.Children {
		res[i] = c.Name
	}
	return res
}

func TestSort(t *testing.T) {
	n := FromFields("",
		FromInt("b", 1),
		FromInt("a", 2),
		FromInt("B", 3),
		FromElements("list", IntType, 12,
			FromInt("10", 0),
			FromInt("2", 0),
			FromInt("x", 0),
			FromInt("1", 0),
		),
	)
	if IsSorted(n) {
		t.Fatal("IsSorted() = true before Sort")
	}
	Sort(n)
	if !IsSorted(n) {
		t.Fatal("IsSorted() = false after Sort")
	}
	got := names(n)
	want := []string{"B", "a", "b", "list"}
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	list := n.Child("list")
	gotIdx := names(list)
	wantIdx := []string{"1", "2", "10", "x"}
	for i := range wantIdx {
		if gotIdx[i] != wantIdx[i] {
			t.Errorf("list names[%d] = %q, want %q", i, gotIdx[i], wantIdx[i])
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{"-1", -1},
		{"x", -1},
		{"", -1},
		{"+1", -1},
		{"007", -1},
		{"00", -1},
	}
	for _, tt := range tests {
		if got := FromInt(tt.name, 0).Index(); got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsSortedNested(t *testing.T) {
	n := FromFields("",
		FromFields("a",
			FromElements("l", StringType, 3,
				FromString("0", ""),
				FromFields("1", FromInt("y", 0), FromInt("x", 0)),
			),
		),
	)
	if IsSorted(n) {
		t.Fatal("IsSorted() = true with an unsorted grandchild")
	}
	Sort(n)
	if !IsSorted(n) {
		t.Fatal("IsSorted() = false after Sort")
	}
}

func TestFromSlice(t *testing.T) {
	n := FromSlice("l", StringType, []*Node{FromString("a", "x"), FromString("b", "y")})
	if got := names(n); len(got) != 2 || got[0] != "0" || got[1] != "1" {
		t.Errorf("names = %v, want [0 1]", got)
	}
	if n.Count != 2 || !n.IsComplex() || n.IsObject() {
		t.Errorf("FromSlice() = %+v, want a collection of 2", n)
	}
	if FromString("s", "").IsComplex() || !FromFields("o").IsComplex() {
		t.Error("IsComplex() disagrees with the node type")
	}
}
