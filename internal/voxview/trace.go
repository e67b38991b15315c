package voxview

import "math"

// dda is the shared state of the incremental grid traversal: current voxel
// indices, per-axis step signs, the parametric distance to the next boundary
// of each axis (tMax) and the constant distance between boundaries (tDelta).
// Axes with a zero direction component carry +Inf and never advance.
type dda struct {
	i, j, k                   int
	stepX, stepY, stepZ       int
	tMaxX, tMaxY, tMaxZ       Real
	tDeltaX, tDeltaY, tDeltaZ Real
}

// axisSetup computes one axis of the DDA state. u is the continuous origin
// coordinate (already centered in the voxel), c the integer voxel index and
// d the unit direction component.
func axisSetup(u Real, c int, d Real) (step int, tMax, tDelta Real) {
	step = 1
	if d < 0 {
		step = -1
	}
	if d != 0 {
		next := Real(c)
		if step > 0 {
			next = Real(c + 1)
		}
		tMax = (next - u) / d
		tDelta = math.Abs(1 / d)
	} else {
		tMax = math.Inf(1)
		tDelta = math.Inf(1)
	}
	return
}

// newDDA centers the origin inside its voxel and prepares the traversal
// state for a unit direction d.
func newDDA(origin, d Vec3) dda {
	x, y, z := origin.X+0.5, origin.Y+0.5, origin.Z+0.5
	t := dda{i: int(origin.X), j: int(origin.Y), k: int(origin.Z)}
	t.stepX, t.tMaxX, t.tDeltaX = axisSetup(x, t.i, d.X)
	t.stepY, t.tMaxY, t.tDeltaY = axisSetup(y, t.j, d.Y)
	t.stepZ, t.tMaxZ, t.tDeltaZ = axisSetup(z, t.k, d.Z)
	return t
}

// advance moves to the next voxel along the axis with the smallest pending
// tMax. Ties favor x over y over z; the ordering is observable at exact
// grid-diagonal rays and must stay stable.
func (t *dda) advance() {
	if t.tMaxX <= t.tMaxY && t.tMaxX <= t.tMaxZ {
		t.tMaxX += t.tDeltaX
		t.i += t.stepX
	} else if t.tMaxY <= t.tMaxZ {
		t.tMaxY += t.tDeltaY
		t.j += t.stepY
	} else {
		t.tMaxZ += t.tDeltaZ
		t.k += t.stepZ
	}
}

// traceGreen walks the grid from origin along dir and reports whether the
// ray visits a green-class voxel before leaving the bounds. A zero-length
// direction is a defined miss.
func traceGreen(g *Grid, origin, dir Vec3, green *CodeTable) bool {
	l := dir.Len()
	if l == 0 {
		return false
	}
	t := newDDA(origin, dir.Mul(1/l))
	for g.InBounds(t.i, t.j, t.k) {
		if green.Has(g.At(t.i, t.j, t.k)) {
			return true
		}
		t.advance()
	}
	return false
}

// traceSky reports whether the ray exits the grid without visiting any
// non-void voxel. Leaving the bounds is the success condition here.
func traceSky(g *Grid, origin, dir Vec3) bool {
	l := dir.Len()
	if l == 0 {
		return false
	}
	t := newDDA(origin, dir.Mul(1/l))
	for g.InBounds(t.i, t.j, t.k) {
		if g.At(t.i, t.j, t.k) != CodeVoid {
			return false
		}
		t.advance()
	}
	return true
}

// traceTarget walks from origin toward the given target cell and reports
// whether the target is reached before the ray visits an opaque voxel or
// exits the bounds. Origin coinciding with the target is trivially visible.
func traceTarget(g *Grid, origin Vec3, target Cell, opaque *CodeTable) bool {
	dir := Vec3{
		Real(target.X) - origin.X,
		Real(target.Y) - origin.Y,
		Real(target.Z) - origin.Z,
	}
	l := dir.Len()
	if l == 0 {
		return true
	}
	t := newDDA(origin, dir.Mul(1/l))
	for {
		if !g.InBounds(t.i, t.j, t.k) {
			return false
		}
		if opaque.Has(g.At(t.i, t.j, t.k)) {
			return false
		}
		if t.i == target.X && t.j == target.Y && t.k == target.Z {
			return true
		}
		t.advance()
	}
}
