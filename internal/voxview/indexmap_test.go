package voxview

import (
	"math"
	"testing"
)

func TestIndexMap_StartsAsSentinels(t *testing.T) {
	m := NewIndexMap(3, 4)
	if m.Nx != 3 || m.Ny != 4 {
		t.Fatalf("unexpected shape (%d, %d)", m.Nx, m.Ny)
	}
	for i, v := range m.Buf {
		if !math.IsNaN(v) {
			t.Fatalf("cell %d initialized to %v, want NaN", i, v)
		}
	}
}

func TestIndexMap_Flipud(t *testing.T) {
	m := NewIndexMap(3, 2)
	m.Set(0, 0, 0.1)
	m.Set(0, 1, 0.2)
	m.Set(2, 0, 0.9)
	m.Flipud()
	if m.At(2, 0) != 0.1 || m.At(2, 1) != 0.2 {
		t.Fatal("first row must move to the last")
	}
	if m.At(0, 0) != 0.9 {
		t.Fatal("last row must move to the first")
	}
	if !math.IsNaN(m.At(1, 0)) {
		t.Fatal("middle row keeps its sentinel")
	}
}

func TestIndexMap_StatsFiltersSentinels(t *testing.T) {
	m := NewIndexMap(2, 3)
	m.Set(0, 0, 0.0)
	m.Set(0, 2, 1.0)
	m.Set(1, 1, 0.5)

	s := m.Stats()
	if s.Valid != 3 {
		t.Fatalf("valid = %d, want 3", s.Valid)
	}
	if s.Min != 0 || s.Max != 1 {
		t.Fatalf("min/max = %v/%v", s.Min, s.Max)
	}
	if !nearly(s.Mean, 0.5, eps) {
		t.Fatalf("mean = %v, want 0.5", s.Mean)
	}
	if !nearly(s.Median, 0.5, eps) {
		t.Fatalf("median = %v, want 0.5", s.Median)
	}
	if math.IsNaN(s.StdDev) {
		t.Fatal("stddev polluted by sentinels")
	}
}

func TestIndexMap_StatsEmpty(t *testing.T) {
	m := NewIndexMap(2, 2)
	s := m.Stats()
	if s.Valid != 0 {
		t.Fatalf("valid = %d, want 0", s.Valid)
	}
	if s.Mean != 0 || s.Min != 0 || s.Max != 0 {
		t.Fatal("empty summary must be zero-valued, not NaN")
	}
}
