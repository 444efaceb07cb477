// Package render rasterizes a height-field map into an RGBA frame buffer from a
// first-person camera.
package render

import (
	"math"

	"golang.org/x/sync/errgroup"

	"voxel-space/internal/core"
)

// Stats summarizes the work done for one frame.
type Stats struct {
	Columns    int // columns rasterized
	Steps      int // ray-march iterations across all columns
	Spans      int // terrain spans painted
	Terminated int // columns that stopped early because they were fully covered
	SkyRows    int
}

func (s *Stats) add(o Stats) {
	s.Columns += o.Columns
	s.Steps += o.Steps
	s.Spans += o.Spans
	s.Terminated += o.Terminated
}

// Renderer draws frames of a fixed map. It holds no per-frame state, so one
// Renderer may serve any number of frame buffers.
type Renderer struct {
	m    *core.Map
	opts Options
}

// New validates opts and returns a renderer for m.
func New(m *core.Map, opts Options) (*Renderer, error) {
	if m == nil {
		return nil, &core.ConfigurationError{What: "map", Want: "non-nil", Got: nil}
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Renderer{m: m, opts: opts}, nil
}

// Map returns the map being rendered.
func (r *Renderer) Map() *core.Map { return r.m }

// Options returns the renderer's tuning.
func (r *Renderer) Options() Options { return r.opts }

// frame carries the per-frame values shared by every column.
type frame struct {
	cam         core.Camera
	left, right core.Point
	depth       int
	skyRows     int
}

// Render overwrites every pixel of fb with the view from cam: sky above the
// horizon, terrain over it, and the void color wherever neither reached.
func (r *Renderer) Render(fb *FrameBuffer, cam core.Camera) Stats {
	f := frame{cam: cam, depth: depthLimit(cam.ZFar, r.opts.MaxDepth)}
	f.left, f.right = cam.Frustum()
	f.skyRows = fillSky(fb, cam.Horizon, r.opts.SkyTop, r.opts.SkyBottom)

	var stats Stats
	workers := r.opts.Workers
	if workers > fb.Width {
		workers = fb.Width
	}
	if workers <= 1 {
		stats = r.drawColumns(fb, &f, 0, fb.Width)
		stats.SkyRows = f.skyRows
		return stats
	}

	band := (fb.Width + workers - 1) / workers
	parts := make([]Stats, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		start := w * band
		end := min(start+band, fb.Width)
		if start >= end {
			break
		}
		g.Go(func() error {
			parts[w] = r.drawColumns(fb, &f, start, end)
			return nil
		})
	}
	_ = g.Wait()
	for _, p := range parts {
		stats.add(p)
	}
	stats.SkyRows = f.skyRows
	return stats
}

func (r *Renderer) drawColumns(fb *FrameBuffer, f *frame, start, end int) Stats {
	var s Stats
	for i := start; i < end; i++ {
		s.add(r.drawColumn(fb, f, i))
	}
	return s
}

// Reach returns how far the last ray sample lands along each frustum edge, as
// a fraction of the edge vector returned by Camera.Frustum.
func (r *Renderer) Reach(cam core.Camera) float32 {
	depth := depthLimit(cam.ZFar, r.opts.MaxDepth)
	if depth <= 1 {
		return 0
	}
	steps := (depth - 2 + r.opts.DepthStep) / r.opts.DepthStep
	return float32(steps) * r.opts.RayStep / cam.ZFar
}

// depthLimit returns min(round(zfar/2), maxDepth), or 0 when zfar is not
// positive.
func depthLimit(zfar float32, maxDepth int) int {
	half := math.Round(float64(zfar) / 2)
	if !(half > 0) {
		return 0
	}
	if half >= float64(maxDepth) {
		return maxDepth
	}
	return int(half)
}
