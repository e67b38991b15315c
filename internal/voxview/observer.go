package voxview

import mapset "github.com/deckarep/golang-set/v2"

// ObserverPolicy decides where a ground-level observer may stand. Standable
// holds the codes an observer can occupy; Excluded holds support codes that
// invalidate the whole column (no one stands on a building roof, and the
// tree/agriculture surfaces depend on the analysis mode).
type ObserverPolicy struct {
	Standable *CodeTable
	Excluded  *CodeTable
}

// NewObserverPolicy compiles explicit standable and excluded-support sets
// into a policy.
func NewObserverPolicy(standable, excluded mapset.Set[int8]) ObserverPolicy {
	return ObserverPolicy{
		Standable: tableFromSet(standable),
		Excluded:  tableFromSet(excluded),
	}
}

// StreetLevelPolicy is the observer rule for the green and sky view modes:
// an observer may stand in void or inside tree canopy; columns supported by
// building volume, agriculture surface, building surface or the reserved
// surface code 9 are invalid.
func StreetLevelPolicy() ObserverPolicy {
	return NewObserverPolicy(
		mapset.NewThreadUnsafeSet(CodeVoid, CodeTree),
		mapset.NewThreadUnsafeSet(CodeBuilding, CodeAgriculture, CodeBuildingTop, int8(9)),
	)
}

// GroundOnlyPolicy is the observer rule for landmark visibility: only void
// cells are standable, and tree canopy additionally invalidates the support.
func GroundOnlyPolicy() ObserverPolicy {
	return NewObserverPolicy(
		mapset.NewThreadUnsafeSet(CodeVoid),
		mapset.NewThreadUnsafeSet(CodeBuilding, CodeTree, CodeAgriculture, CodeBuildingTop, int8(9)),
	)
}

// FindObserver scans column (x, y) upward from z=1 for the lowest standable
// cell sitting on a non-standable one. It returns that z and true, or false
// when the support is excluded or no such transition exists. The first
// transition decides the column either way, so there is at most one observer
// per column.
func (p ObserverPolicy) FindObserver(g *Grid, x, y int) (int, bool) {
	for z := 1; z < g.Nz; z++ {
		if !p.Standable.Has(g.At(x, y, z)) || p.Standable.Has(g.At(x, y, z-1)) {
			continue
		}
		if p.Excluded.Has(g.At(x, y, z-1)) {
			return 0, false
		}
		return z, true
	}
	return 0, false
}
