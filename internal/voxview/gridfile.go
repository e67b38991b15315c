package voxview

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Container format for the collaborator handoff: a zstd stream holding one
// JSON header line followed by a gob-encoded versioned payload. Grid
// producers and result consumers agree on this file shape only; geometry
// exporters and renderers live elsewhere.

const fileMagic = "voxview"

type fileHeader struct {
	Magic   string `json:"magic"`
	Kind    string `json:"kind"` // "grid", "map" or "ids"
	Version int    `json:"version"`
}

type gridV1 struct {
	Nx, Ny, Nz int
	Buf        []int8
}

type mapV1 struct {
	Nx, Ny int
	Buf    []float64
}

type idsV1 struct {
	Nx, Ny int
	Buf    []int32
}

func writeContainer(path, kind string, payload any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(fileHeader{Magic: fileMagic, Kind: kind, Version: 1})
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := gob.NewEncoder(bw).Encode(payload); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

func readContainer(path, kind string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	var hdr fileHeader
	if err := json.Unmarshal(line, &hdr); err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	if hdr.Magic != fileMagic {
		return fmt.Errorf("%s: not a voxview container", path)
	}
	if hdr.Kind != kind {
		return fmt.Errorf("%s: container holds %q, want %q", path, hdr.Kind, kind)
	}
	if err := gob.NewDecoder(br).Decode(payload); err != nil {
		return fmt.Errorf("gob decode: %w", err)
	}
	return nil
}

// WriteGrid stores a voxel grid.
func WriteGrid(path string, g *Grid) error {
	return writeContainer(path, "grid", &gridV1{Nx: g.Nx, Ny: g.Ny, Nz: g.Nz, Buf: g.Buf})
}

// ReadGrid loads a voxel grid.
func ReadGrid(path string) (*Grid, error) {
	var v gridV1
	if err := readContainer(path, "grid", &v); err != nil {
		return nil, err
	}
	g, err := NewGrid(v.Nx, v.Ny, v.Nz)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(v.Buf) != len(g.Buf) {
		return nil, fmt.Errorf("%s: payload has %d voxels, want %d", path, len(v.Buf), len(g.Buf))
	}
	g.Buf = v.Buf
	return g, nil
}

// WriteIndexMap stores a 2D result map, sentinels included.
func WriteIndexMap(path string, m *IndexMap) error {
	return writeContainer(path, "map", &mapV1{Nx: m.Nx, Ny: m.Ny, Buf: m.Buf})
}

// ReadIndexMap loads a 2D result map.
func ReadIndexMap(path string) (*IndexMap, error) {
	var v mapV1
	if err := readContainer(path, "map", &v); err != nil {
		return nil, err
	}
	if v.Nx <= 0 || v.Ny <= 0 || len(v.Buf) != v.Nx*v.Ny {
		return nil, fmt.Errorf("%s: inconsistent map dimensions", path)
	}
	return &IndexMap{Nx: v.Nx, Ny: v.Ny, Buf: v.Buf}, nil
}

// WriteIDGrid stores a building-ID raster.
func WriteIDGrid(path string, g *IDGrid) error {
	return writeContainer(path, "ids", &idsV1{Nx: g.Nx, Ny: g.Ny, Buf: g.Buf})
}

// ReadIDGrid loads a building-ID raster.
func ReadIDGrid(path string) (*IDGrid, error) {
	var v idsV1
	if err := readContainer(path, "ids", &v); err != nil {
		return nil, err
	}
	if v.Nx <= 0 || v.Ny <= 0 || len(v.Buf) != v.Nx*v.Ny {
		return nil, fmt.Errorf("%s: inconsistent id grid dimensions", path)
	}
	return &IDGrid{Nx: v.Nx, Ny: v.Ny, Buf: v.Buf}, nil
}
