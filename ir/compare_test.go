package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Shape ranking: leaf < object < collection
		{"Leaf < Object", FromInt("", 1), FromFields(""), -1},
		{"Object < Collection", FromFields(""), FromElements("", ComplexType, 0), -1},

		// Names come first
		{"a < b", FromInt("a", 9), FromInt("b", 1), -1},

		// Kind ranking within leaves
		{"Bool < Int", FromBool("", true), FromInt("", 0), -1},
		{"Int < Uint", FromInt("", 5), FromUint("", 0), -1},
		{"Float < String", FromFloat("", 9), FromString("", ""), -1},

		// Values
		{"false < true", FromBool("", false), FromBool("", true), -1},
		{"true == true", FromBool("", true), FromBool("", true), 0},
		{"Int < Int", FromInt("", -1), FromInt("", 2), -1},
		{"Uint < Uint", FromUint("", 1), FromUint("", 2), -1},
		{"Float < Float", FromFloat("", 1.5), FromFloat("", 2), -1},
		{"String < String", FromString("", "a"), FromString("", "b"), -1},
		{"Null String < String", NullString(""), FromString("", ""), -1},
		{"Null Object < Object", NullObject(""), FromFields(""), -1},

		// Children
		{"Empty Object == Empty Object", FromFields(""), FromFields(""), 0},
		{"Short Object < Long Object",
			FromFields("", FromInt("a", 1)),
			FromFields("", FromInt("a", 1), FromInt("b", 2)),
			-1},
		{"Object Child Value",
			FromFields("", FromInt("a", 1)),
			FromFields("", FromInt("a", 2)),
			-1},
		{"Collection Count",
			FromElements("", IntType, 1),
			FromElements("", IntType, 2),
			-1},
		{"Collection Children",
			FromSlice("", IntType, []*Node{FromInt("", 1)}),
			FromSlice("", IntType, []*Node{FromInt("", 2)}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestSameContent(t *testing.T) {
	a := FromFields("left", FromInt("x", 1))
	b := FromFields("right", FromInt("x", 1))
	if Equal(a, b) {
		t.Error("Equal() = true for differently named nodes")
	}
	if !SameContent(a, b) {
		t.Error("SameContent() = false, want true")
	}
	if SameContent(a, nil) {
		t.Error("SameContent(a, nil) = true")
	}
}

func TestClone(t *testing.T) {
	orig := FromFields("",
		FromInt("x", 1),
		FromSlice("xs", StringType, []*Node{FromString("", "a")}),
	)
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs from original")
	}
	c.Children[1].Children[0].String = "changed"
	if orig.Children[1].Children[0].String != "a" {
		t.Error("clone shares children with original")
	}
}
