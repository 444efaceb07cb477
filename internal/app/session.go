// Package app drives the camera and renderer, either inside an ebiten window
// or headless.
package app

import (
	"go.uber.org/zap"

	"voxel-space/internal/core"
	"voxel-space/internal/logger"
	"voxel-space/internal/render"
	"voxel-space/internal/ui"
)

// Session owns the camera and the frame buffer it is rendered into. It knows
// nothing about windows or input devices.
type Session struct {
	renderer *render.Renderer
	fb       *render.FrameBuffer
	cam      core.Camera
	motion   core.Motion

	report *core.FixedStep
	stats  render.Stats
	keys   core.Controls
	fps    float32
	frames uint64
}

// NewSession allocates a w×h frame buffer for r.
func NewSession(r *render.Renderer, w, h int, cam core.Camera, motion core.Motion) (*Session, error) {
	fb, err := render.NewFrameBuffer(w, h)
	if err != nil {
		return nil, err
	}
	return &Session{
		renderer: r,
		fb:       fb,
		cam:      cam,
		motion:   motion,
		report:   core.NewFixedStep(1),
	}, nil
}

// Advance applies dt seconds of ctl to the camera and renders a frame.
func (s *Session) Advance(ctl core.Controls, dt float32) render.Stats {
	s.keys = ctl
	if dt > 0 {
		s.fps = 1 / dt
	}
	s.cam.Apply(ctl, dt, s.motion)
	s.stats = s.renderer.Render(s.fb, s.cam)
	s.frames++

	if logger.Enabled(zap.DebugLevel) && s.report.ShouldStep() {
		logger.Debug("camera",
			zap.Float32("x", s.cam.X),
			zap.Float32("y", s.cam.Y),
			zap.Float32("height", s.cam.Height),
			zap.Float32("horizon", s.cam.Horizon),
			zap.Float32("angle", s.cam.Angle),
			zap.Float32("zfar", s.cam.ZFar),
			zap.Float32("dt", dt),
			zap.Float32("fps", s.fps),
			zap.Stringer("keys", ctl),
			zap.Int("steps", s.stats.Steps),
			zap.Int("terminated", s.stats.Terminated),
		)
	}
	return s.stats
}

// Camera returns the current camera.
func (s *Session) Camera() core.Camera { return s.cam }

// Frame returns the most recently rendered frame.
func (s *Session) Frame() *render.FrameBuffer { return s.fb }

// Frames reports how many frames have been rendered.
func (s *Session) Frames() uint64 { return s.frames }

// Renderer returns the renderer driving this session.
func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Readout captures the state shown by the HUD.
func (s *Session) Readout() ui.Readout {
	return ui.Readout{Camera: s.cam, Stats: s.stats, FPS: s.fps, Keys: s.keys}
}
