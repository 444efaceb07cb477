// Package ui draws the on-screen camera readout and the minimap.
package ui

import (
	"fmt"
	"math"

	"voxel-space/internal/core"
	"voxel-space/internal/render"
)

// Readout is the per-frame state shown by the HUD.
type Readout struct {
	Camera core.Camera
	Stats  render.Stats
	FPS    float32
	Keys   core.Controls
}

var helpLines = []string{
	"arrows  move / turn",
	"E / D   climb / descend",
	"W / S   horizon",
	"H hud   M map   Q quit",
}

// Lines formats the readout as fixed-width text rows.
func (r Readout) Lines() []string {
	c := r.Camera
	return []string{
		fmt.Sprintf("pos     %7.1f %7.1f", c.X, c.Y),
		fmt.Sprintf("height  %7.1f", c.Height),
		fmt.Sprintf("horizon %7.1f", c.Horizon),
		fmt.Sprintf("heading %7.1f", headingDegrees(c.Angle)),
		fmt.Sprintf("zfar    %7.1f", c.ZFar),
		fmt.Sprintf("fps     %7.1f", r.FPS),
		fmt.Sprintf("steps   %7d", r.Stats.Steps),
		fmt.Sprintf("spans   %7d", r.Stats.Spans),
		"keys    " + r.Keys.String(),
	}
}

// headingDegrees folds an angle in radians into [0, 360).
func headingDegrees(angle float32) float64 {
	d := math.Mod(float64(angle)*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	if math.IsNaN(d) {
		return 0
	}
	return d
}

// MinimapPixels samples the map's colors into a size×size RGBA buffer with
// nearest-neighbour lookup.
func MinimapPixels(m *core.Map, size int, alpha uint8) []byte {
	if size <= 0 {
		return nil
	}
	n := m.Size()
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		my := y * n / size
		for x := 0; x < size; x++ {
			r, g, b := m.ColorAt(x*n/size, my)
			i := (y*size + x) * 4
			pix[i+0] = r
			pix[i+1] = g
			pix[i+2] = b
			pix[i+3] = alpha
		}
	}
	return pix
}

// Marker is the camera position and its view cone in minimap pixels.
type Marker struct {
	Pos, Left, Right core.Point
}

// CameraMarker projects the camera and the visible part of its frustum onto
// a size×size minimap of an n×n map. reach scales the frustum edges; see
// render.Renderer.Reach.
func CameraMarker(cam core.Camera, n, size int, reach float32) Marker {
	scale := float32(size) / float32(n)
	wrap := func(v float32) float32 {
		w := math.Mod(float64(v), float64(n))
		switch {
		case math.IsNaN(w):
			return 0
		case w < 0:
			w += float64(n)
		}
		return float32(w)
	}
	pos := core.Point{X: wrap(cam.X) * scale, Y: wrap(cam.Y) * scale}
	left, right := cam.Frustum()
	k := reach * scale
	return Marker{
		Pos:   pos,
		Left:  core.Point{X: pos.X + left.X*k, Y: pos.Y + left.Y*k},
		Right: core.Point{X: pos.X + right.X*k, Y: pos.Y + right.Y*k},
	}
}
