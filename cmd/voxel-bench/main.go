// Command voxel-bench renders a fixed camera orbit under a sweep of renderer
// settings and reports the cost per frame.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"

	"voxel-space/internal/assets"
	"voxel-space/internal/core"
	"voxel-space/internal/logger"
	"voxel-space/internal/render"
)

type scenario struct {
	workers int
	smooth  bool
	zfar    float32
}

func (s scenario) String() string {
	return fmt.Sprintf("workers=%d smooth=%t zfar=%.0f", s.workers, s.smooth, s.zfar)
}

type scenarioResult struct {
	scenario   scenario
	perFrame   time.Duration
	steps      int
	spans      int
	terminated int
}

func main() {
	frames := flag.Int("frames", 120, "frames to render per scenario")
	width := flag.Int("width", 1024, "frame width")
	height := flag.Int("height", 576, "frame height")
	mapSize := flag.Int("map", 1024, "generated map edge length")
	seed := flag.Int64("seed", 1, "map seed")
	heightPath := flag.String("heightmap", "", "heightmap image; generates terrain when empty")
	colorPath := flag.String("colormap", "", "colormap image")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logger.Init(logger.Options{Level: *logLevel, Console: true}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var (
		m   *core.Map
		err error
	)
	if *heightPath != "" {
		m, err = assets.Load(*heightPath, *colorPath, 0)
	} else {
		m, err = assets.Generate(*mapSize, *seed)
	}
	if err != nil {
		logger.Error("loading map", zap.Error(err))
		os.Exit(1)
	}

	fb, err := render.NewFrameBuffer(*width, *height)
	if err != nil {
		logger.Error("allocating frame", zap.Error(err))
		os.Exit(1)
	}

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			logger.Error("starting profile", zap.Error(err))
			os.Exit(1)
		}
		defer stop()
	}

	var sets []scenario
	for _, workers := range workerOptions() {
		for _, smooth := range []bool{false, true} {
			for _, zfar := range []float32{300, 600, 1200} {
				sets = append(sets, scenario{workers: workers, smooth: smooth, zfar: zfar})
			}
		}
	}

	fmt.Printf("Benchmarking %d scenarios (%dx%d, map %d, %d frames each)\n",
		len(sets), fb.Width, fb.Height, m.Size(), *frames)

	start := time.Now()
	all := make([]scenarioResult, 0, len(sets))
	for _, sc := range sets {
		res, err := runScenario(m, fb, sc, *frames)
		if err != nil {
			logger.Error("scenario failed", zap.Stringer("scenario", sc), zap.Error(err))
			os.Exit(1)
		}
		logger.Debug("scenario done",
			zap.Stringer("scenario", sc),
			zap.Duration("per_frame", res.perFrame),
		)
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].perFrame < all[j].perFrame })
	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) %7.2fms/frame  steps=%d spans=%d terminated=%d  %s\n",
			i+1, float64(res.perFrame.Microseconds())/1000, res.steps, res.spans, res.terminated, res.scenario)
	}
}

func workerOptions() []int {
	opts := []int{1, 2, 4}
	if n := runtime.NumCPU(); n > 4 {
		opts = append(opts, n)
	}
	return opts
}

// runScenario spins the default camera a full turn over frames frames.
func runScenario(m *core.Map, fb *render.FrameBuffer, sc scenario, frames int) (scenarioResult, error) {
	opts := render.DefaultOptions()
	opts.Workers = sc.workers
	opts.Smooth = sc.smooth
	r, err := render.New(m, opts)
	if err != nil {
		return scenarioResult{}, err
	}

	cam := core.DefaultCamera()
	cam.X = float32(m.Size()) / 2
	cam.Y = float32(m.Size()) / 2
	cam.Height = 180
	cam.ZFar = sc.zfar
	frames = max(frames, 1)
	turn := float32(2*math.Pi) / float32(frames)

	res := scenarioResult{scenario: sc}
	start := time.Now()
	for i := 0; i < frames; i++ {
		stats := r.Render(fb, cam)
		res.steps += stats.Steps
		res.spans += stats.Spans
		res.terminated += stats.Terminated
		cam.Angle += turn
	}
	res.perFrame = time.Since(start) / time.Duration(frames)
	res.steps /= frames
	res.spans /= frames
	res.terminated /= frames
	return res, nil
}
