package voxview

import (
	"testing"
)

func TestGridBasics(t *testing.T) {
	g, err := NewGrid(3, 4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Buf) != 3*4*5 {
		t.Fatalf("buffer size %d", len(g.Buf))
	}
	g.Set(2, 3, 4, CodeBuilding)
	if got := g.At(2, 3, 4); got != CodeBuilding {
		t.Fatalf("At = %d", got)
	}
	if g.At(0, 0, 0) != CodeVoid {
		t.Fatal("fresh grid must be void")
	}
	if !g.InBounds(2, 3, 4) || g.InBounds(3, 0, 0) || g.InBounds(0, -1, 0) {
		t.Fatal("bounds check")
	}

	for _, bad := range [][3]int{{0, 4, 5}, {3, -1, 5}, {3, 4, 0}} {
		if _, err := NewGrid(bad[0], bad[1], bad[2]); err == nil {
			t.Fatalf("NewGrid(%v) must fail", bad)
		}
	}
}

func TestGridClone(t *testing.T) {
	g, _ := NewGrid(2, 2, 2)
	g.Set(1, 1, 1, CodeTree)
	c := g.Clone()
	c.Set(1, 1, 1, CodeWater)
	if g.At(1, 1, 1) != CodeTree {
		t.Fatal("clone must not alias the source buffer")
	}
}

func TestGridCodes(t *testing.T) {
	g, _ := NewGrid(2, 2, 2)
	g.Set(0, 0, 0, CodeBareland)
	g.Set(1, 1, 1, CodeBuilding)
	codes := g.Codes()
	want := []int8{CodeBuilding, CodeVoid, CodeBareland}
	if len(codes) != len(want) {
		t.Fatalf("codes %v", codes)
	}
	for i, c := range want {
		if codes[i] != c {
			t.Fatalf("codes %v, want %v", codes, want)
		}
	}
}

func TestCodeTable(t *testing.T) {
	ct := NewCodeTable(CodeTree, CodeRangeland)
	if !ct.Has(CodeTree) || !ct.Has(CodeRangeland) {
		t.Fatal("missing member")
	}
	if ct.Has(CodeBuilding) || ct.Has(CodeVoid) {
		t.Fatal("unexpected member")
	}
	got := ct.Codes()
	if len(got) != 2 || got[0] != CodeTree || got[1] != CodeRangeland {
		t.Fatalf("Codes() = %v", got)
	}
}
