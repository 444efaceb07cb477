package render

import (
	"image/color"
	"math"
)

// skyRows returns the number of rows above the horizon line, clamped to
// [0, height].
func skyRows(horizon float32, height int) int {
	line := math.Round(float64(horizon))
	switch {
	case !(line > 0):
		return 0
	case line >= float64(height):
		return height
	}
	return int(line)
}

// fillSky paints the vertical gradient from top to bottom above the horizon
// line and returns how many rows it wrote.
func fillSky(fb *FrameBuffer, horizon float32, top, bottom color.RGBA) int {
	rows := skyRows(horizon, fb.Height)
	if rows == 0 {
		return 0
	}
	line := float32(math.Round(float64(horizon)))
	for y := 0; y < rows; y++ {
		fb.fillRow(y, gradient(top, bottom, float32(y)/line))
	}
	return rows
}

// gradient mixes top and bottom per channel at t and truncates. Alpha is opaque.
func gradient(top, bottom color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(top.R)*(1-t) + float32(bottom.R)*t),
		G: uint8(float32(top.G)*(1-t) + float32(bottom.G)*t),
		B: uint8(float32(top.B)*(1-t) + float32(bottom.B)*t),
		A: 255,
	}
}
