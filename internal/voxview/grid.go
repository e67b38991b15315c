package voxview

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Grid stores a voxelized city model (axis order x, y, z) as a flat buffer
// of semantic codes: len = Nx*Ny*Nz. The engine treats it as read-only; the
// only sanctioned mutation is the landmark-marking preparation phase, which
// operates on a derived copy.
type Grid struct {
	Nx, Ny, Nz int
	Buf        []int8 // flat: ((i*Ny)+j)*Nz + k
}

// NewGrid allocates a zero (all void) grid for the given resolution.
func NewGrid(nx, ny, nz int) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("grid resolution must be positive, got (%d, %d, %d)", nx, ny, nz)
	}
	return &Grid{
		Nx: nx, Ny: ny, Nz: nz,
		Buf: make([]int8, nx*ny*nz),
	}, nil
}

// Flat buffer index helper.
func (g *Grid) idx(i, j, k int) int {
	return ((i*g.Ny)+j)*g.Nz + k
}

// At returns the code at voxel (i, j, k). Bounds are the caller's problem.
func (g *Grid) At(i, j, k int) int8 { return g.Buf[g.idx(i, j, k)] }

// Set writes the code at voxel (i, j, k).
func (g *Grid) Set(i, j, k int, v int8) { g.Buf[g.idx(i, j, k)] = v }

// InBounds reports whether (i, j, k) addresses a voxel of the grid.
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	buf := make([]int8, len(g.Buf))
	copy(buf, g.Buf)
	return &Grid{Nx: g.Nx, Ny: g.Ny, Nz: g.Nz, Buf: buf}
}

// Codes returns the grid's value alphabet (every distinct code present),
// in ascending order.
func (g *Grid) Codes() []int8 {
	s := mapset.NewThreadUnsafeSet[int8]()
	for _, v := range g.Buf {
		s.Add(v)
	}
	out := s.ToSlice()
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Cell addresses a single voxel by its integer indices.
type Cell struct {
	X, Y, Z int
}

// CellsWithCode returns every voxel carrying the given code, in row-major
// (x, then y, then z) order. The order is part of the contract: landmark
// visibility probes targets in discovery order.
func (g *Grid) CellsWithCode(code int8) []Cell {
	var out []Cell
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				if g.At(i, j, k) == code {
					out = append(out, Cell{i, j, k})
				}
			}
		}
	}
	return out
}

// IDGrid is a 2D companion raster mapping each (x, y) column to a building
// identifier, in the external south-up orientation.
type IDGrid struct {
	Nx, Ny int
	Buf    []int32 // flat: i*Ny + j
}

// NewIDGrid allocates a zeroed building-ID raster.
func NewIDGrid(nx, ny int) (*IDGrid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("id grid resolution must be positive, got (%d, %d)", nx, ny)
	}
	return &IDGrid{Nx: nx, Ny: ny, Buf: make([]int32, nx*ny)}, nil
}

// At returns the building ID of column (i, j).
func (g *IDGrid) At(i, j int) int32 { return g.Buf[i*g.Ny+j] }

// Set writes the building ID of column (i, j).
func (g *IDGrid) Set(i, j int, v int32) { g.Buf[i*g.Ny+j] = v }

// flipud returns a copy with the x axis reversed, converting between the
// external south-up convention and internal grid orientation.
func (g *IDGrid) flipud() *IDGrid {
	out := &IDGrid{Nx: g.Nx, Ny: g.Ny, Buf: make([]int32, len(g.Buf))}
	for i := 0; i < g.Nx; i++ {
		copy(out.Buf[(g.Nx-1-i)*g.Ny:(g.Nx-i)*g.Ny], g.Buf[i*g.Ny:(i+1)*g.Ny])
	}
	return out
}
