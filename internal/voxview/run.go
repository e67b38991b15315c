package voxview

import (
	"fmt"
	"time"
)

// Run executes every analysis requested by the config file: load the grid,
// place observers, compute the requested index maps, write them next to the
// grid and print a summary per map.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	grid, err := ReadGrid(cfg.GridPath)
	if err != nil {
		return err
	}
	DebugLog("Loaded grid %s: (%d, %d, %d), codes %v", cfg.GridPath, grid.Nx, grid.Ny, grid.Nz, grid.Codes())

	hv := HeightVoxels(cfg.ViewHeight, cfg.MeshSize)

	if c := cfg.Green; c != nil {
		dirs, err := c.Directions()
		if err != nil {
			return fmt.Errorf("green directions: %w", err)
		}
		start := time.Now()
		m := ComputeGreenViewMap(grid, dirs, hv)
		DebugLog("green view: %d rays/observer, time: %s", len(dirs), time.Since(start))
		if err := WriteIndexMap(c.Output, m); err != nil {
			return fmt.Errorf("write green view map: %w", err)
		}
		fmt.Printf("green view -> %s (%s)\n", c.Output, m.Stats())
	}

	if c := cfg.Sky; c != nil {
		dirs, err := c.Directions()
		if err != nil {
			return fmt.Errorf("sky directions: %w", err)
		}
		start := time.Now()
		m := ComputeSkyViewMap(grid, dirs, hv)
		DebugLog("sky view: %d rays/observer, time: %s", len(dirs), time.Since(start))
		if err := WriteIndexMap(c.Output, m); err != nil {
			return fmt.Errorf("write sky view map: %w", err)
		}
		fmt.Printf("sky view -> %s (%s)\n", c.Output, m.Stats())
	}

	if c := cfg.Landmark; c != nil {
		marked := grid
		if !c.Premarked {
			idGrid, err := ReadIDGrid(c.IDGridPath)
			if err != nil {
				return err
			}
			marked, err = MarkBuildingsByID(grid, idGrid, c.BuildingIDs, c.MarkCode)
			if err != nil {
				return err
			}
		}
		start := time.Now()
		m, err := ComputeLandmarkVisibility(marked, c.MarkCode, hv)
		if err != nil {
			return err
		}
		DebugLog("landmark visibility time: %s", time.Since(start))
		if err := WriteIndexMap(c.Output, m); err != nil {
			return fmt.Errorf("write landmark map: %w", err)
		}
		fmt.Printf("landmark visibility -> %s (%s)\n", c.Output, m.Stats())
	}

	return nil
}
