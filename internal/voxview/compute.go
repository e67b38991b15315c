package voxview

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// computeMap runs the per-column observer search and evaluation over the
// whole grid. Columns are independent: the grid, direction set and code
// tables are shared read-only, and each worker owns a contiguous x range of
// the output, so no locking is needed. The finished map is flipped once to
// the external south-up orientation.
func computeMap(g *Grid, pol ObserverPolicy, heightVoxels int, eval func(obs Vec3) Real) *IndexMap {
	m := NewIndexMap(g.Nx, g.Ny)

	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > g.Nx {
		workers = g.Nx
	}

	totalCols := int64(g.Nx) * int64(g.Ny)
	var counter int64
	nextPrint := int64(1)
	if totalCols >= 100 {
		nextPrint = totalCols / 100 // ~1%
	}

	// Split the x dimension evenly, remainder spread over the first workers.
	base, rem := g.Nx/workers, g.Nx%workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		count := base
		if w < rem {
			count++
		}
		go func(x0, x1 int) {
			defer wg.Done()
			for x := x0; x < x1; x++ {
				for y := 0; y < g.Ny; y++ {
					if z, ok := pol.FindObserver(g, x, y); ok {
						obs := Vec3{Real(x), Real(y), Real(z + heightVoxels)}
						m.Set(x, y, eval(obs))
					}
					if Progress {
						done := atomic.AddInt64(&counter, 1)
						if done%nextPrint == 0 {
							fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(totalCols))
						}
					}
				}
			}
		}(start, start+count)
		start += count
	}
	wg.Wait()

	m.Flipud()
	return m
}

// ComputeGreenViewMap derives the green view index for every column of the
// grid using the supplied direction set and eye-height offset (voxels).
func ComputeGreenViewMap(g *Grid, dirs []Vec3, heightVoxels int) *IndexMap {
	green := GreenCodes()
	return computeMap(g, StreetLevelPolicy(), heightVoxels, func(obs Vec3) Real {
		return greenViewAt(g, obs, dirs, green)
	})
}

// ComputeSkyViewMap derives the sky view index for every column of the grid.
func ComputeSkyViewMap(g *Grid, dirs []Vec3, heightVoxels int) *IndexMap {
	return computeMap(g, StreetLevelPolicy(), heightVoxels, func(obs Vec3) Real {
		return skyViewAt(g, obs, dirs)
	})
}

// ComputeLandmarkMap derives the boolean landmark-visibility map for a grid
// whose landmark voxels were already overwritten with the marker code.
// Targets are probed in the order they were discovered.
func ComputeLandmarkMap(g *Grid, targets []Cell, opaque *CodeTable, heightVoxels int) *IndexMap {
	return computeMap(g, GroundOnlyPolicy(), heightVoxels, func(obs Vec3) Real {
		return landmarkVisibleAt(g, obs, targets, opaque)
	})
}

// HeightVoxels converts an eye height in meters to whole voxels for the
// given mesh size (meters per voxel edge).
func HeightVoxels(heightMeters, meshSize Real) int {
	return int(heightMeters / meshSize)
}
