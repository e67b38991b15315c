package voxview

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// IndexMap is a 2D result raster matching the grid's (x, y) extent. Cells
// hold a value in [0,1] (or {0,1} for landmark visibility); NaN marks
// columns with no valid observer and must be filtered before any aggregate.
type IndexMap struct {
	Nx, Ny int
	Buf    []float64 // flat: i*Ny + j
}

// NewIndexMap allocates a map with every cell set to the NaN sentinel.
func NewIndexMap(nx, ny int) *IndexMap {
	m := &IndexMap{Nx: nx, Ny: ny, Buf: make([]float64, nx*ny)}
	nan := math.NaN()
	for i := range m.Buf {
		m.Buf[i] = nan
	}
	return m
}

// At returns the value of cell (i, j).
func (m *IndexMap) At(i, j int) float64 { return m.Buf[i*m.Ny+j] }

// Set writes the value of cell (i, j).
func (m *IndexMap) Set(i, j int, v float64) { m.Buf[i*m.Ny+j] = v }

// Flipud reverses the map along the x axis in place, converting from grid
// orientation to the external south-up convention.
func (m *IndexMap) Flipud() {
	for i, o := 0, m.Nx-1; i < o; i, o = i+1, o-1 {
		lo := m.Buf[i*m.Ny : (i+1)*m.Ny]
		hi := m.Buf[o*m.Ny : (o+1)*m.Ny]
		for j := range lo {
			lo[j], hi[j] = hi[j], lo[j]
		}
	}
}

// MapStats summarizes the valid (non-sentinel) cells of an index map.
type MapStats struct {
	Valid  int // number of non-sentinel cells
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

// Stats computes summary statistics over the valid cells. Sentinel cells are
// dropped first; a map with no valid cell yields a zero-valued summary.
func (m *IndexMap) Stats() MapStats {
	vals := make([]float64, 0, len(m.Buf))
	for _, v := range m.Buf {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return MapStats{}
	}
	sort.Float64s(vals)
	return MapStats{
		Valid:  len(vals),
		Min:    vals[0],
		Max:    vals[len(vals)-1],
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
	}
}

// String renders a one-line summary for operator output.
func (s MapStats) String() string {
	return fmt.Sprintf("valid=%d min=%.4f max=%.4f mean=%.4f stddev=%.4f median=%.4f",
		s.Valid, s.Min, s.Max, s.Mean, s.StdDev, s.Median)
}
