package core

import "math"

// Point is a position or direction in map space.
type Point struct {
	X, Y float32
}

// Camera holds the viewer state read by the renderer once per frame.
type Camera struct {
	X       float32 // map-space position
	Y       float32
	Height  float32 // eye elevation
	Horizon float32 // vertical screen offset of the horizon, in pixels
	ZFar    float32 // render distance in map units
	Angle   float32 // heading in radians, clockwise
}

// DefaultCamera returns the start pose used when no configuration overrides it.
func DefaultCamera() Camera {
	return Camera{
		X:       512,
		Y:       512,
		Height:  70,
		Horizon: 60,
		ZFar:    600,
		Angle:   1.5 * math.Pi,
	}
}

// Frustum returns the far-plane corners of the 90° view, relative to the
// camera position. Columns fan out linearly from left to right.
func (c Camera) Frustum() (left, right Point) {
	s64, c64 := math.Sincos(float64(c.Angle))
	sin, cos := float32(s64), float32(c64)
	z := c.ZFar
	left = Point{X: cos*z + sin*z, Y: sin*z - cos*z}
	right = Point{X: cos*z - sin*z, Y: sin*z + cos*z}
	return left, right
}
