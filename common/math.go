package common

// Logical screen size. The window scales this to fit.
const (
	BaseWidth  = 640
	BaseHeight = 360
)
