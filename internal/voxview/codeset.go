package voxview

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// CodeTable is a dense membership table over the int8 code space. The ray
// loop tests membership per visited voxel, so lookups must be a single
// array access rather than a set probe.
type CodeTable struct {
	m [256]bool
}

// NewCodeTable builds a table from explicit codes.
func NewCodeTable(codes ...int8) *CodeTable {
	return tableFromSet(mapset.NewThreadUnsafeSet(codes...))
}

func tableFromSet(s mapset.Set[int8]) *CodeTable {
	t := &CodeTable{}
	for _, v := range s.ToSlice() {
		t.m[uint8(v)] = true
	}
	return t
}

// Has reports whether code v is in the table.
func (t *CodeTable) Has(v int8) bool { return t.m[uint8(v)] }

// Codes returns the member codes in ascending order.
func (t *CodeTable) Codes() []int8 {
	out := make([]int8, 0, 8)
	for i := 0; i < 256; i++ {
		if t.m[i] {
			out = append(out, int8(i))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// GreenCodes is the canonical green-class set: tree canopy interiors plus
// rangeland, tree-covered surface and agriculture surface cells.
func GreenCodes() *CodeTable {
	return NewCodeTable(CodeTree, CodeRangeland, CodeTreeSurface, CodeAgriculture)
}
