package voxview

import (
	"fmt"
	"math"
)

// DirectionSet samples ray directions over (azimuth, elevation) and converts
// them to unit Cartesian vectors. Azimuth angles are evenly spaced over
// [0, 2π) excluding the endpoint; elevation angles (degrees) are evenly
// spaced inclusive over [elevMinDeg, elevMaxDeg]. The result is ordered
// elevation-major, azimuth-minor, and is stable across calls: the reduction
// does not care, tests and reproducibility do.
func DirectionSet(nAzimuth, nElevation int, elevMinDeg, elevMaxDeg Real) ([]Vec3, error) {
	if nAzimuth < 1 || nElevation < 1 {
		return nil, fmt.Errorf("direction counts must be positive, got azimuth=%d elevation=%d", nAzimuth, nElevation)
	}
	if elevMaxDeg < elevMinDeg {
		return nil, fmt.Errorf("elevation range is inverted: [%g, %g]", elevMinDeg, elevMaxDeg)
	}

	azStep := 2 * math.Pi / Real(nAzimuth)
	elevStep := Real(0)
	if nElevation > 1 {
		elevStep = (elevMaxDeg - elevMinDeg) / Real(nElevation-1)
	}

	dirs := make([]Vec3, 0, nAzimuth*nElevation)
	for e := 0; e < nElevation; e++ {
		elev := (elevMinDeg + Real(e)*elevStep) * math.Pi / 180
		cosElev, sinElev := math.Cos(elev), math.Sin(elev)
		for a := 0; a < nAzimuth; a++ {
			az := Real(a) * azStep
			dirs = append(dirs, Vec3{
				X: cosElev * math.Cos(az),
				Y: cosElev * math.Sin(az),
				Z: sinElev,
			})
		}
	}
	return dirs, nil
}

// GreenDirections returns the default near-horizontal band used for the
// green view index.
func GreenDirections() []Vec3 {
	dirs, err := DirectionSet(NAzimuthGreen, NElevationGreen, ElevMinGreen, ElevMaxGreen)
	if err != nil {
		panic(err) // defaults are compile-time constants
	}
	return dirs
}

// SkyDirections returns the default upward cone used for the sky view index.
func SkyDirections() []Vec3 {
	dirs, err := DirectionSet(NAzimuthSky, NElevationSky, ElevMinSky, ElevMaxSky)
	if err != nil {
		panic(err)
	}
	return dirs
}
