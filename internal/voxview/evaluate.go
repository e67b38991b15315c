package voxview

// greenViewAt casts every direction from the observer and returns the
// fraction of rays that hit a green-class voxel.
func greenViewAt(g *Grid, obs Vec3, dirs []Vec3, green *CodeTable) Real {
	hits := 0
	for _, d := range dirs {
		if traceGreen(g, obs, d, green) {
			hits++
		}
	}
	return Real(hits) / Real(len(dirs))
}

// skyViewAt casts every direction from the observer and returns the fraction
// of rays that leave the grid unobstructed.
func skyViewAt(g *Grid, obs Vec3, dirs []Vec3) Real {
	hits := 0
	for _, d := range dirs {
		if traceSky(g, obs, d) {
			hits++
		}
	}
	return Real(hits) / Real(len(dirs))
}

// landmarkVisibleAt probes the targets in discovery order and returns 1 as
// soon as any of them is reachable without crossing an opaque voxel, else 0.
func landmarkVisibleAt(g *Grid, obs Vec3, targets []Cell, opaque *CodeTable) Real {
	for _, tgt := range targets {
		if traceTarget(g, obs, tgt, opaque) {
			return 1
		}
	}
	return 0
}
