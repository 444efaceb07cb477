package render

import (
	"image/color"
	"math"
)

// projLimit bounds projected rows so conversion to int never overflows.
const projLimit = 1 << 30

// drawColumn marches one ray from the camera through the height field, far
// into the distance, painting each sample that rises above everything drawn
// so far in the column.
func (r *Renderer) drawColumn(fb *FrameBuffer, f *frame, i int) Stats {
	s := Stats{Columns: 1}
	m := r.m
	n := m.Size()
	heights := m.Heights().Cells()
	colors := m.Colors().Cells()
	opts := &r.opts

	fi, fw := float32(i), float32(fb.Width)
	dx := (f.left.X + (f.right.X-f.left.X)/fw*fi) / f.cam.ZFar
	dy := (f.left.Y + (f.right.Y-f.left.Y)/fw*fi) / f.cam.ZFar
	rx, ry := f.cam.X, f.cam.Y
	tallest := fb.Height

	for z := 1; z < f.depth; z += opts.DepthStep {
		s.Steps++
		rx += dx * opts.RayStep
		ry += dy * opts.RayStep

		var (
			h   float32
			off int
		)
		if opts.Smooth {
			h = m.SampleHeight(rx, ry)
		} else {
			off = m.WrapFloat(ry)*n + m.WrapFloat(rx)
			h = float32(heights[off])
		}

		proj := project(f.cam.Height-h, z, opts.ScaleFactor, f.cam.Horizon)
		if proj >= tallest {
			continue
		}

		var c color.RGBA
		if opts.Smooth {
			c.R, c.G, c.B = m.SampleColor(rx, ry)
		} else {
			c.R, c.G, c.B = colors[off*3], colors[off*3+1], colors[off*3+2]
		}
		c.A = 255
		fb.fillColumn(i, proj, tallest, c)
		s.Spans++

		tallest = proj
		if tallest <= 0 {
			s.Terminated++
			break
		}
	}

	if tallest > f.skyRows {
		fb.fillColumn(i, f.skyRows, tallest, opts.Void)
	}
	return s
}

// project maps a height difference at depth z to a screen row.
func project(dh float32, z int, scale, horizon float32) int {
	v := math.Round(float64(dh/float32(z)*scale + horizon))
	switch {
	case math.IsNaN(v), v > projLimit:
		return projLimit
	case v < -projLimit:
		return -projLimit
	}
	return int(v)
}
