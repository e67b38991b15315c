package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/voxview/internal/voxview"
)

func main() {
	voxview.Debug = os.Getenv("DEBUG") != ""
	voxview.Progress = os.Getenv("QUIET") == ""
	if w := os.Getenv("WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			voxview.Workers = n
		}
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := voxview.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
