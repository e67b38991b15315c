package voxview

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// NoLandmarkFoundError signals that a landmark analysis was requested but no
// voxel carries the marker code. The caller must never receive a silently
// empty visibility map.
type NoLandmarkFoundError struct {
	Mark int8
}

func (e *NoLandmarkFoundError) Error() string {
	return fmt.Sprintf("no landmark with value %d found in the voxel grid", e.Mark)
}

// MarkBuildingsByID returns a derived copy of the grid in which every
// building-volume voxel of the listed buildings is overwritten with the
// marker code. The building-ID raster arrives in the external south-up
// orientation and is flipped to match the grid. The input grid is never
// mutated: marking is a preparation phase sequenced before the parallel
// visibility computation.
func MarkBuildingsByID(g *Grid, idGrid *IDGrid, ids []int32, mark int8) (*Grid, error) {
	if idGrid.Nx != g.Nx || idGrid.Ny != g.Ny {
		return nil, fmt.Errorf("id grid extent (%d, %d) does not match grid extent (%d, %d)",
			idGrid.Nx, idGrid.Ny, g.Nx, g.Ny)
	}
	want := mapset.NewThreadUnsafeSet(ids...)
	flipped := idGrid.flipud()

	out := g.Clone()
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			if !want.Contains(flipped.At(i, j)) {
				continue
			}
			for k := 0; k < g.Nz; k++ {
				if out.At(i, j, k) == CodeBuilding {
					out.Set(i, j, k, mark)
				}
			}
		}
	}
	return out, nil
}

// LandmarkTargets returns the marker voxels in row-major discovery order,
// or NoLandmarkFoundError when there are none.
func LandmarkTargets(g *Grid, mark int8) ([]Cell, error) {
	targets := g.CellsWithCode(mark)
	if len(targets) == 0 {
		return nil, &NoLandmarkFoundError{Mark: mark}
	}
	return targets, nil
}

// OpaqueCodes derives the blocking set from the grid's value alphabet: every
// code present in the grid blocks a target ray except void (always
// transparent) and the marker itself (the target). Which codes block
// visibility is a property of the grid's alphabet, not a hardcoded table.
func OpaqueCodes(g *Grid, mark int8) *CodeTable {
	s := mapset.NewThreadUnsafeSet[int8]()
	for _, v := range g.Codes() {
		if v != CodeVoid && v != mark {
			s.Add(v)
		}
	}
	return tableFromSet(s)
}

// ComputeLandmarkVisibility is the full landmark pipeline for a pre-marked
// grid: discover targets, derive the opaque set, compute the map.
func ComputeLandmarkVisibility(g *Grid, mark int8, heightVoxels int) (*IndexMap, error) {
	targets, err := LandmarkTargets(g, mark)
	if err != nil {
		return nil, err
	}
	opaque := OpaqueCodes(g, mark)
	DebugLog("landmark targets: %d, opaque codes: %v", len(targets), opaque.Codes())
	return ComputeLandmarkMap(g, targets, opaque, heightVoxels), nil
}
