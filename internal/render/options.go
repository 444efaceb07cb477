package render

import (
	"image/color"
	"math"

	"voxel-space/internal/core"
)

// Options tunes the rasterizer. Start from DefaultOptions; the march constants
// are balanced against each other and against ScaleFactor.
type Options struct {
	// ScaleFactor controls vertical exaggeration of projected heights.
	ScaleFactor float32
	// DepthStep is the increment of the depth used as the projection divisor.
	DepthStep int
	// RayStep scales the per-iteration advance of the ray in map units.
	RayStep float32
	// MaxDepth caps the number of depth units marched per column.
	MaxDepth int
	// Smooth samples heights and colors bilinearly instead of per cell.
	Smooth bool
	// Workers above 1 render column bands concurrently.
	Workers int

	SkyTop    color.RGBA
	SkyBottom color.RGBA
	// Void fills rows below the horizon that no terrain reached.
	Void color.RGBA
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		ScaleFactor: 50,
		DepthStep:   2,
		RayStep:     4,
		MaxDepth:    300,
		Workers:     1,
		SkyTop:      color.RGBA{R: 135, G: 206, B: 235, A: 255},
		SkyBottom:   color.RGBA{R: 70, G: 130, B: 180, A: 255},
		Void:        color.RGBA{R: 70, G: 130, B: 180, A: 255},
	}
}

func (o Options) validate() error {
	if f := float64(o.ScaleFactor); math.IsNaN(f) || math.IsInf(f, 0) {
		return &core.ConfigurationError{What: "scale factor", Want: "finite", Got: o.ScaleFactor}
	}
	if o.DepthStep < 1 {
		return &core.ConfigurationError{What: "depth step", Want: ">=1", Got: o.DepthStep}
	}
	if f := float64(o.RayStep); !(f > 0) || math.IsInf(f, 0) {
		return &core.ConfigurationError{What: "ray step", Want: ">0", Got: o.RayStep}
	}
	if o.MaxDepth < 0 {
		return &core.ConfigurationError{What: "max depth", Want: ">=0", Got: o.MaxDepth}
	}
	if o.Workers < 0 {
		return &core.ConfigurationError{What: "workers", Want: ">=0", Got: o.Workers}
	}
	return nil
}
