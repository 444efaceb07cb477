package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"voxel-space/internal/app"
	"voxel-space/internal/assets"
	"voxel-space/internal/config"
	"voxel-space/internal/core"
	"voxel-space/internal/logger"
	"voxel-space/internal/render"
)

type cli struct {
	flags    config.Flags
	headless bool
	frames   uint64
	hz       int
	pick     bool
}

func parseCLI() *cli {
	c := &cli{}
	c.flags.Bind(flag.CommandLine)
	flag.BoolVar(&c.headless, "headless", false, "render without opening a window")
	flag.Uint64Var(&c.frames, "frames", 0, "stop after N headless frames (0 = run until interrupted)")
	flag.IntVar(&c.hz, "hz", 60, "headless frame rate")
	flag.BoolVar(&c.pick, "pick", false, "choose the colormap and heightmap with file dialogs (window build)")
	flag.Parse()
	return c
}

// prepare loads the config, starts logging and builds the session. It returns
// a nil config when the process has nothing left to do.
func prepare(c *cli) (*config.Config, *app.Session) {
	cfg, err := config.Load(&c.flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.LoggerOptions(true)); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if c.flags.WriteConfig != "" {
		if err := cfg.SaveTo(c.flags.WriteConfig); err != nil {
			fatal("writing config", err)
		}
		logger.Info("wrote config", zap.String("path", c.flags.WriteConfig))
		return nil, nil
	}

	start := time.Now()
	m, err := loadMap(cfg.Map)
	if err != nil {
		fatal("loading map", err)
	}
	logger.Info("map ready",
		zap.Int("size", m.Size()),
		zap.String("height", cfg.Map.HeightPath),
		zap.String("color", cfg.Map.ColorPath),
		zap.Duration("took", time.Since(start)),
	)

	r, err := render.New(m, cfg.Render.Options())
	if err != nil {
		fatal("creating renderer", err)
	}
	s, err := app.NewSession(r, cfg.Window.Width, cfg.Window.Height, cfg.Camera.StartCamera(), cfg.Motion.CameraMotion())
	if err != nil {
		fatal("creating session", err)
	}
	return cfg, s
}

// loadMap reads the configured images, or generates terrain when none are set.
func loadMap(mc config.MapConfig) (*core.Map, error) {
	if mc.HeightPath == "" {
		return assets.Generate(mc.Size, mc.Seed)
	}
	return assets.Load(mc.HeightPath, mc.ColorPath, mc.Resample)
}

func runHeadless(c *cli, s *app.Session) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err := app.RunHeadless(ctx, s, app.HeadlessConfig{Hz: c.hz, Frames: c.frames})
	logger.Info("headless run finished",
		zap.Uint64("frames", s.Frames()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal("headless run", err)
	}
}

func fatal(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	logger.Sync()
	os.Exit(1)
}
