package settings

import "testing"

func TestLink_Empty(t *testing.T) {
	Link(nil)
	Link([]*File{})
}

func TestLink_Single(t *testing.T) {
	f := mustOpen(t)
	Link([]*File{f})
	if f.Next() != nil {
		t.Error("linking a single file must leave Next nil")
	}
}

func TestLink_Direction(t *testing.T) {
	a := mustOpen(t) // most authoritative
	b := mustOpen(t)
	c := mustOpen(t) // least authoritative

	Link([]*File{a, b, c})

	if a.Next() != nil {
		t.Error("the most authoritative file must have no Next")
	}
	if b.Next() != a {
		t.Error("b.Next should point at a")
	}
	if c.Next() != b {
		t.Error("c.Next should point at b")
	}
}
