package voxview

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

var compiledSchema = jsonschema.MustCompileString("config.schema.json", configSchema)

// RaysCfg parameterizes one hemispheric direction set. Elevation bounds are
// pointers so that an explicit 0 survives next to mode defaults.
type RaysCfg struct {
	NAzimuth   int    `json:"nAzimuth,omitempty"`
	NElevation int    `json:"nElevation,omitempty"`
	ElevMinDeg *Real  `json:"elevMinDeg,omitempty"`
	ElevMaxDeg *Real  `json:"elevMaxDeg,omitempty"`
	Output     string `json:"output,omitempty"`
}

// LandmarkCfg selects the landmark buildings. Either the grid file already
// carries marker voxels (premarked), or a building-ID raster plus the IDs to
// mark must be supplied.
type LandmarkCfg struct {
	IDGridPath  string  `json:"idGrid,omitempty"`
	BuildingIDs []int32 `json:"buildingIds,omitempty"`
	MarkCode    int8    `json:"markCode,omitempty"`
	Premarked   bool    `json:"premarked,omitempty"`
	Output      string  `json:"output,omitempty"`
}

type Config struct {
	GridPath   string       `json:"grid"`
	MeshSize   Real         `json:"meshSize,omitempty"`
	ViewHeight Real         `json:"viewHeight,omitempty"`
	Green      *RaysCfg     `json:"green,omitempty"`
	Sky        *RaysCfg     `json:"sky,omitempty"`
	Landmark   *LandmarkCfg `json:"landmark,omitempty"`
}

func applyRayDefaults(c *RaysCfg, nAz, nElev int, elevMin, elevMax Real, out string) {
	if c.NAzimuth <= 0 {
		c.NAzimuth = nAz
	}
	if c.NElevation <= 0 {
		c.NElevation = nElev
	}
	if c.ElevMinDeg == nil {
		v := elevMin
		c.ElevMinDeg = &v
	}
	if c.ElevMaxDeg == nil {
		v := elevMax
		c.ElevMaxDeg = &v
	}
	if c.Output == "" {
		c.Output = out
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Defaults / validation
	if cfg.MeshSize <= 0 {
		cfg.MeshSize = MeshSize
	}
	if cfg.ViewHeight == 0 {
		cfg.ViewHeight = ViewHeight
	}
	if cfg.Green == nil && cfg.Sky == nil && cfg.Landmark == nil {
		return nil, fmt.Errorf("config has no analyses (expected at least one of green, sky, landmark)")
	}
	if cfg.Green != nil {
		applyRayDefaults(cfg.Green, NAzimuthGreen, NElevationGreen, ElevMinGreen, ElevMaxGreen, GreenOut)
	}
	if cfg.Sky != nil {
		applyRayDefaults(cfg.Sky, NAzimuthSky, NElevationSky, ElevMinSky, ElevMaxSky, SkyOut)
	}
	if lm := cfg.Landmark; lm != nil {
		if lm.MarkCode == 0 {
			lm.MarkCode = CodeLandmark
		}
		if lm.Output == "" {
			lm.Output = LandmarkOut
		}
		if !lm.Premarked {
			if lm.IDGridPath == "" {
				return nil, fmt.Errorf("landmark analysis needs idGrid (or premarked: true)")
			}
			if len(lm.BuildingIDs) == 0 {
				return nil, fmt.Errorf("landmark analysis needs buildingIds (or premarked: true)")
			}
		}
	}
	DebugLog("Loaded config from %s: grid=%s, meshSize=%g, viewHeight=%g", path, cfg.GridPath, cfg.MeshSize, cfg.ViewHeight)
	return &cfg, nil
}

// Directions builds the direction set described by a rays block.
func (c *RaysCfg) Directions() ([]Vec3, error) {
	return DirectionSet(c.NAzimuth, c.NElevation, *c.ElevMinDeg, *c.ElevMaxDeg)
}
