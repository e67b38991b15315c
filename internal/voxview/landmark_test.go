package voxview

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildingScene places two building columns on flat ground and returns the
// grid plus a south-up ID raster naming them 7 and 8.
func buildingScene(t *testing.T) (*Grid, *IDGrid) {
	t.Helper()
	g := flatGround(t, 6, 6, 8)
	for k := 1; k <= 3; k++ {
		g.Set(2, 2, k, CodeBuilding)
		g.Set(4, 4, k, CodeBuilding)
	}
	ids, err := NewIDGrid(6, 6)
	if err != nil {
		t.Fatalf("NewIDGrid: %v", err)
	}
	// The raster is south-up: internal x=2 is external row 6-1-2=3.
	ids.Set(3, 2, 7)
	ids.Set(1, 4, 8)
	return g, ids
}

func TestMarkBuildingsByID(t *testing.T) {
	g, ids := buildingScene(t)
	marked, err := MarkBuildingsByID(g, ids, []int32{7}, CodeLandmark)
	if err != nil {
		t.Fatalf("MarkBuildingsByID: %v", err)
	}

	// Only building 7 (internal column (2,2)) is overwritten.
	for k := 1; k <= 3; k++ {
		if marked.At(2, 2, k) != CodeLandmark {
			t.Fatalf("voxel (2,2,%d) = %d, want marker", k, marked.At(2, 2, k))
		}
		if marked.At(4, 4, k) != CodeBuilding {
			t.Fatalf("voxel (4,4,%d) = %d, want building", k, marked.At(4, 4, k))
		}
	}
	// Ground under the marked building keeps its code; the input grid is
	// untouched.
	if marked.At(2, 2, 0) != CodeBareland {
		t.Fatal("marking must only rewrite building-volume voxels")
	}
	if g.At(2, 2, 1) != CodeBuilding {
		t.Fatal("input grid was mutated")
	}
}

func TestMarkBuildingsByID_ExtentMismatch(t *testing.T) {
	g := flatGround(t, 4, 4, 6)
	ids, err := NewIDGrid(5, 4)
	if err != nil {
		t.Fatalf("NewIDGrid: %v", err)
	}
	if _, err := MarkBuildingsByID(g, ids, []int32{1}, CodeLandmark); err == nil {
		t.Fatal("expected extent mismatch error")
	}
}

func TestLandmarkTargets_DiscoveryOrder(t *testing.T) {
	g := flatGround(t, 4, 4, 6)
	g.Set(2, 1, 3, CodeLandmark)
	g.Set(1, 3, 2, CodeLandmark)
	g.Set(1, 0, 5, CodeLandmark)

	targets, err := LandmarkTargets(g, CodeLandmark)
	if err != nil {
		t.Fatalf("LandmarkTargets: %v", err)
	}
	want := []Cell{{1, 0, 5}, {1, 3, 2}, {2, 1, 3}}
	if diff := cmp.Diff(want, targets); diff != "" {
		t.Fatalf("target order mismatch (-want +got):\n%s", diff)
	}
}

func TestLandmarkTargets_NoneFound(t *testing.T) {
	g := flatGround(t, 4, 4, 6)
	_, err := LandmarkTargets(g, CodeLandmark)
	var nlf *NoLandmarkFoundError
	if !errors.As(err, &nlf) {
		t.Fatalf("want NoLandmarkFoundError, got %v", err)
	}
	if nlf.Mark != CodeLandmark {
		t.Fatalf("error carries mark %d, want %d", nlf.Mark, CodeLandmark)
	}
}

func TestOpaqueCodes_DerivedFromAlphabet(t *testing.T) {
	g := flatGround(t, 4, 4, 6)
	g.Set(1, 1, 1, CodeBuilding)
	g.Set(2, 2, 1, CodeLandmark)
	g.Set(3, 3, 1, CodeTree)

	opaque := OpaqueCodes(g, CodeLandmark)
	want := []int8{CodeBuilding, CodeTree, CodeBareland}
	if diff := cmp.Diff(want, opaque.Codes()); diff != "" {
		t.Fatalf("opaque set mismatch (-want +got):\n%s", diff)
	}
	if opaque.Has(CodeVoid) {
		t.Fatal("void is always transparent")
	}
	if opaque.Has(CodeLandmark) {
		t.Fatal("the marker itself is the target, never opaque")
	}
}

func TestComputeLandmarkVisibility_Reflexive(t *testing.T) {
	g, ids := buildingScene(t)
	marked, err := MarkBuildingsByID(g, ids, []int32{7}, CodeLandmark)
	if err != nil {
		t.Fatalf("MarkBuildingsByID: %v", err)
	}
	m, err := ComputeLandmarkVisibility(marked, CodeLandmark, 0)
	if err != nil {
		t.Fatalf("ComputeLandmarkVisibility: %v", err)
	}

	// Standing right next to the marked building with a clear line: visible.
	if v := mapAt(m, 1, 2); v != 1 {
		t.Fatalf("adjacent observer: visibility = %v, want 1", v)
	}
	// The unmarked building column has no observer at all.
	if !math.IsNaN(mapAt(m, 4, 4)) {
		t.Fatal("building column must carry the sentinel")
	}
}

func TestComputeLandmarkVisibility_Occluded(t *testing.T) {
	// A wall of buildings fully separating the observer from the landmark.
	g := flatGround(t, 7, 3, 12)
	for k := 1; k <= 2; k++ {
		g.Set(3, 0, k, CodeBuilding)
	}
	for j := 0; j < 3; j++ {
		for k := 1; k < 12; k++ {
			g.Set(5, j, k, CodeBuilding)
		}
	}
	ids, err := NewIDGrid(7, 3)
	if err != nil {
		t.Fatalf("NewIDGrid: %v", err)
	}
	ids.Set(7-1-3, 0, 42)
	marked, err := MarkBuildingsByID(g, ids, []int32{42}, CodeLandmark)
	if err != nil {
		t.Fatalf("MarkBuildingsByID: %v", err)
	}
	m, err := ComputeLandmarkVisibility(marked, CodeLandmark, 0)
	if err != nil {
		t.Fatalf("ComputeLandmarkVisibility: %v", err)
	}
	if v := mapAt(m, 2, 0); v != 1 {
		t.Fatalf("near-side observer: visibility = %v, want 1", v)
	}
	if v := mapAt(m, 6, 0); v != 0 {
		t.Fatalf("observer behind the wall: visibility = %v, want 0", v)
	}
}

func TestComputeLandmarkVisibility_NoTargets(t *testing.T) {
	g := flatGround(t, 4, 4, 6)
	if _, err := ComputeLandmarkVisibility(g, CodeLandmark, 0); err == nil {
		t.Fatal("missing landmarks must fail loudly, not return an empty map")
	}
}
