package voxview

var (
	Debug    = false // set to true for verbose debug output
	Progress = false // set to true to print [PROGRESS] lines from map workers
	Workers  = 0     // number of column workers; 0 means runtime.NumCPU()
)
