// Package config handles configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"math"

	"voxel-space/internal/core"
	"voxel-space/internal/logger"
	"voxel-space/internal/render"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Map     MapConfig     `yaml:"map"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Motion  MotionConfig  `yaml:"motion"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings. Width and Height are the frame size in
// pixels; Scale enlarges the window without changing the frame.
type WindowConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Scale       int    `yaml:"scale"`
	TPS         int    `yaml:"tps"`
	Title       string `yaml:"title"`
	ShowHUD     bool   `yaml:"show_hud"`
	ShowMinimap bool   `yaml:"show_minimap"`
}

// MapConfig selects the terrain source. When both paths are empty a map is
// generated from Size and Seed.
type MapConfig struct {
	HeightPath string `yaml:"height"`
	ColorPath  string `yaml:"color"`
	Resample   int    `yaml:"resample"` // resize loaded images to this edge length; 0 keeps them
	Size       int    `yaml:"size"`
	Seed       int64  `yaml:"seed"`
}

// CameraConfig is the start pose.
type CameraConfig struct {
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Height  float32 `yaml:"height"`
	Horizon float32 `yaml:"horizon"`
	ZFar    float32 `yaml:"zfar"`
	Angle   float32 `yaml:"angle"` // radians, clockwise
}

// RenderConfig tunes the rasterizer.
type RenderConfig struct {
	ScaleFactor float32 `yaml:"scale_factor"`
	DepthStep   int     `yaml:"depth_step"`
	RayStep     float32 `yaml:"ray_step"`
	MaxDepth    int     `yaml:"max_depth"`
	Smooth      bool    `yaml:"smooth"`
	Workers     int     `yaml:"workers"`
	SkyTop      Color   `yaml:"sky_top"`
	SkyBottom   Color   `yaml:"sky_bottom"`
	Void        Color   `yaml:"void"`
}

// MotionConfig holds camera speeds per second.
type MotionConfig struct {
	MoveSpeed  float32 `yaml:"move_speed"`
	TurnSpeed  float32 `yaml:"turn_speed"`
	ClimbSpeed float32 `yaml:"climb_speed"`
	PitchSpeed float32 `yaml:"pitch_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := core.DefaultCamera()
	opts := render.DefaultOptions()
	motion := core.DefaultMotion()
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 576,
			Scale:  1,
			TPS:    60,
			Title:  "Voxel Landscape",
		},
		Map: MapConfig{
			Size: 1024,
			Seed: 1,
		},
		Camera: CameraConfig{
			X:       cam.X,
			Y:       cam.Y,
			Height:  cam.Height,
			Horizon: cam.Horizon,
			ZFar:    cam.ZFar,
			Angle:   cam.Angle,
		},
		Render: RenderConfig{
			ScaleFactor: opts.ScaleFactor,
			DepthStep:   opts.DepthStep,
			RayStep:     opts.RayStep,
			MaxDepth:    opts.MaxDepth,
			Smooth:      opts.Smooth,
			Workers:     opts.Workers,
			SkyTop:      Color(opts.SkyTop),
			SkyBottom:   Color(opts.SkyBottom),
			Void:        Color(opts.Void),
		},
		Motion: MotionConfig{
			MoveSpeed:  motion.MoveSpeed,
			TurnSpeed:  motion.TurnSpeed,
			ClimbSpeed: motion.ClimbSpeed,
			PitchSpeed: motion.PitchSpeed,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the settings that no downstream constructor covers.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("window scale %d must be positive", c.Window.Scale)
	case c.Window.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	case (c.Map.HeightPath == "") != (c.Map.ColorPath == ""):
		return fmt.Errorf("map.height and map.color must be set together")
	case c.Map.HeightPath == "" && c.Map.Size <= 0:
		return fmt.Errorf("generated map size %d must be positive", c.Map.Size)
	case c.Map.Resample < 0:
		return fmt.Errorf("map.resample %d must not be negative", c.Map.Resample)
	}
	for _, v := range []float32{c.Camera.X, c.Camera.Y, c.Camera.Height, c.Camera.Horizon, c.Camera.ZFar, c.Camera.Angle} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("camera values must be finite, got %v", v)
		}
	}
	return nil
}

// StartCamera returns the configured start pose.
func (c CameraConfig) StartCamera() core.Camera {
	return core.Camera{X: c.X, Y: c.Y, Height: c.Height, Horizon: c.Horizon, ZFar: c.ZFar, Angle: c.Angle}
}

// Options converts the section into renderer options.
func (c RenderConfig) Options() render.Options {
	return render.Options{
		ScaleFactor: c.ScaleFactor,
		DepthStep:   c.DepthStep,
		RayStep:     c.RayStep,
		MaxDepth:    c.MaxDepth,
		Smooth:      c.Smooth,
		Workers:     c.Workers,
		SkyTop:      color.RGBA(c.SkyTop),
		SkyBottom:   color.RGBA(c.SkyBottom),
		Void:        color.RGBA(c.Void),
	}
}

// CameraMotion converts the section into camera speeds.
func (c MotionConfig) CameraMotion() core.Motion {
	return core.Motion{MoveSpeed: c.MoveSpeed, TurnSpeed: c.TurnSpeed, ClimbSpeed: c.ClimbSpeed, PitchSpeed: c.PitchSpeed}
}

// LoggerOptions converts the section into logger options.
func (c LoggingConfig) LoggerOptions(console bool) logger.Options {
	opts := logger.Options{Level: c.Level, Console: console}
	if c.LogFile != "" {
		opts.File = logger.DefaultFileConfig(c.LogFile)
	}
	return opts
}
