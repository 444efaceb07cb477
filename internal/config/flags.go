package config

import "flag"

// Flags are the command-line overrides. Only flags explicitly set on the
// command line replace values from the config file.
type Flags struct {
	ConfigPath  string
	WriteConfig string
	Debug       bool

	Width  int
	Height int
	Scale  int

	HeightMap string
	ColorMap  string
	Resample  int
	Seed      int64

	Workers int
	Smooth  bool

	LogLevel string
	LogFile  string

	fs *flag.FlagSet
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigPath, "config", "", "path to config file")
	fs.StringVar(&f.WriteConfig, "write-config", "", "write the effective config to this path and exit")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging and the HUD")
	fs.IntVar(&f.Width, "width", 0, "frame width in pixels")
	fs.IntVar(&f.Height, "height", 0, "frame height in pixels")
	fs.IntVar(&f.Scale, "scale", 0, "window scale multiplier")
	fs.StringVar(&f.HeightMap, "heightmap", "", "heightmap image (grayscale)")
	fs.StringVar(&f.ColorMap, "colormap", "", "colormap image")
	fs.IntVar(&f.Resample, "resample", 0, "resize loaded maps to this edge length")
	fs.Int64Var(&f.Seed, "seed", 0, "seed for the generated map")
	fs.IntVar(&f.Workers, "workers", 0, "render workers (1 renders on the calling goroutine)")
	fs.BoolVar(&f.Smooth, "smooth", false, "sample the map bilinearly")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.LogFile, "log-file", "", "also log to this rotating file")
}

// apply copies explicitly set flags onto cfg.
func (f *Flags) apply(cfg *Config) {
	set := map[string]bool{}
	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	}

	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowHUD = true
	}
	if set["width"] {
		cfg.Window.Width = f.Width
	}
	if set["height"] {
		cfg.Window.Height = f.Height
	}
	if set["scale"] {
		cfg.Window.Scale = f.Scale
	}
	if set["heightmap"] {
		cfg.Map.HeightPath = f.HeightMap
	}
	if set["colormap"] {
		cfg.Map.ColorPath = f.ColorMap
	}
	if set["resample"] {
		cfg.Map.Resample = f.Resample
	}
	if set["seed"] {
		cfg.Map.Seed = f.Seed
	}
	if set["workers"] {
		cfg.Render.Workers = f.Workers
	}
	if set["smooth"] {
		cfg.Render.Smooth = f.Smooth
	}
	if set["log-level"] {
		cfg.Logging.Level = f.LogLevel
	}
	if set["log-file"] {
		cfg.Logging.LogFile = f.LogFile
	}
}
