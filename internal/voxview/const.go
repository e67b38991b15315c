package voxview

// Voxel semantic codes. Zero is always traversable void; negative codes are
// volumetric / below-ground material, positive codes are ground-surface
// land-cover classes.
const (
	CodeLandmark    int8 = -30 // transient marker for landmark building voxels
	CodeBuilding    int8 = -3
	CodeTree        int8 = -2
	CodeUnderground int8 = -1
	CodeVoid        int8 = 0
	CodeBareland    int8 = 1
	CodeRangeland   int8 = 2
	CodeDeveloped   int8 = 3
	CodeRoad        int8 = 4
	CodeTreeSurface int8 = 5
	CodeWater       int8 = 6
	CodeAgriculture int8 = 7
	CodeBuildingTop int8 = 8
)

// Tunable defaults, overridable from the JSON config.
const (
	MeshSize   = 1.0 // voxel edge length in meters
	ViewHeight = 1.5 // observer eye height in meters

	// Green view: a near-horizontal band of rays.
	NAzimuthGreen   = 60
	NElevationGreen = 10
	ElevMinGreen    = -30.0 // degrees
	ElevMaxGreen    = 30.0

	// Sky view: an upward cone.
	NAzimuthSky   = 60
	NElevationSky = 5
	ElevMinSky    = 0.0
	ElevMaxSky    = 30.0

	GreenOut    = "green_view.vxm"
	SkyOut      = "sky_view.vxm"
	LandmarkOut = "landmark_visibility.vxm"
)
