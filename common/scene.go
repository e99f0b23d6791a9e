package common

// Default scene size when the window size is not given on the command line.
const (
	BaseWidth  = 800
	BaseHeight = 600
)
