package config

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxel-space/internal/core"
	"voxel-space/internal/render"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var f Flags
	f.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &f
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1024 || cfg.Window.Height != 576 {
		t.Errorf("expected 1024x576, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS != 60 || cfg.Window.Scale != 1 {
		t.Errorf("unexpected tps/scale %d/%d", cfg.Window.TPS, cfg.Window.Scale)
	}
	if cfg.Camera.StartCamera() != core.DefaultCamera() {
		t.Errorf("start camera %+v differs from default", cfg.Camera.StartCamera())
	}
	if cfg.Render.Options() != render.DefaultOptions() {
		t.Errorf("render options %+v differ from defaults", cfg.Render.Options())
	}
	if cfg.Motion.CameraMotion() != core.DefaultMotion() {
		t.Errorf("motion %+v differs from default", cfg.Motion.CameraMotion())
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogFile != "" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
window:
  width: 640
  height: 360
  scale: 2
  show_hud: true
map:
  height: maps/h.png
  color: maps/c.png
  resample: 512
camera:
  x: 100
  horizon: -20.5
  zfar: 800
render:
  scale_factor: 80
  smooth: true
  workers: 4
  sky_top: "#102030"
  void: [1, 2, 3]
motion:
  move_speed: 250
logging:
  level: debug
  log_file: voxel.log
`)

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != 360 || cfg.Window.Scale != 2 || !cfg.Window.ShowHUD {
		t.Errorf("unexpected window %+v", cfg.Window)
	}
	if cfg.Window.TPS != 60 {
		t.Errorf("unset keys must keep defaults, tps = %d", cfg.Window.TPS)
	}
	if cfg.Map.HeightPath != "maps/h.png" || cfg.Map.ColorPath != "maps/c.png" || cfg.Map.Resample != 512 {
		t.Errorf("unexpected map %+v", cfg.Map)
	}
	if cfg.Camera.X != 100 || cfg.Camera.Y != 512 || cfg.Camera.Horizon != -20.5 || cfg.Camera.ZFar != 800 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	opts := cfg.Render.Options()
	if opts.ScaleFactor != 80 || !opts.Smooth || opts.Workers != 4 || opts.DepthStep != 2 {
		t.Errorf("unexpected render options %+v", opts)
	}
	if opts.SkyTop != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("sky_top = %v", opts.SkyTop)
	}
	if opts.Void != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("void = %v", opts.Void)
	}
	if cfg.Motion.MoveSpeed != 250 || cfg.Motion.TurnSpeed != 1.5 {
		t.Errorf("unexpected motion %+v", cfg.Motion)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "voxel.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := map[string]string{
		"invalid syntax": "window:\n  width: not a number\n  invalid syntax here\n",
		"unknown key":    "window:\n  widht: 800\n",
		"short color":    "render:\n  sky_top: \"#fff\"\n",
		"color arity":    "render:\n  void: [1, 2]\n",
		"color range":    "render:\n  void: [1, 2, 300]\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", content)
			if err := loadFromFile(Default(), path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file must load: %v", err)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("empty file changed defaults: %+v", cfg.Window)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !strings.Contains(strings.ToLower(dir), "voxel") {
		t.Errorf("ConfigDir %s does not name the application", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv("APPDATA", filepath.Join(tmpDir, "appdata"))
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" || !cfg.Window.ShowHUD {
					t.Errorf("debug must enable debug logging and the HUD: %+v %+v", cfg.Logging, cfg.Window)
				}
			},
		},
		{
			name: "size flags",
			args: []string{"-width", "320", "-height", "200", "-scale", "3"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 320 || cfg.Window.Height != 200 || cfg.Window.Scale != 3 {
					t.Errorf("unexpected window %+v", cfg.Window)
				}
			},
		},
		{
			name: "map flags",
			args: []string{"-heightmap", "h.gif", "-colormap", "c.gif", "-resample", "256", "-seed", "9"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Map.HeightPath != "h.gif" || cfg.Map.ColorPath != "c.gif" || cfg.Map.Resample != 256 || cfg.Map.Seed != 9 {
					t.Errorf("unexpected map %+v", cfg.Map)
				}
			},
		},
		{
			name: "render flags",
			args: []string{"-workers", "8", "-smooth"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Workers != 8 || !cfg.Render.Smooth {
					t.Errorf("unexpected render %+v", cfg.Render)
				}
			},
		},
		{
			name: "explicit zero overrides",
			args: []string{"-seed", "0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Map.Seed != 0 {
					t.Errorf("explicit -seed 0 ignored, got %d", cfg.Map.Seed)
				}
			},
		},
		{
			name: "unset flags keep config",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1024 || cfg.Map.Seed != 1 || cfg.Render.Workers != 1 {
					t.Errorf("unset flags changed config: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := parseFlags(t, tt.args...)
			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeFile(t, "config.yaml", "window:\n  width: 1600\n  height: 900\n")
	f := parseFlags(t, "-config", path, "-width", "1920")

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "config.yaml", "map:\n  height: only-height.png\n")
	if _, err := Load(parseFlags(t, "-config", path)); err == nil {
		t.Fatal("expected error for a heightmap without a colormap")
	}
	if _, err := Load(parseFlags(t, "-config", path, "-colormap", "c.png", "-width", "-5")); err == nil {
		t.Fatal("expected error for negative width")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 800
	cfg.Render.SkyTop = Color{R: 1, G: 2, B: 3, A: 255}
	cfg.Map.HeightPath = "a.png"
	cfg.Map.ColorPath = "b.png"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"#010203"`) {
		t.Errorf("colors must be written as hex strings:\n%s", data)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero width":      func(c *Config) { c.Window.Width = 0 },
		"zero scale":      func(c *Config) { c.Window.Scale = 0 },
		"zero tps":        func(c *Config) { c.Window.TPS = 0 },
		"color only":      func(c *Config) { c.Map.ColorPath = "c.png" },
		"zero map size":   func(c *Config) { c.Map.Size = 0 },
		"negative resize": func(c *Config) { c.Map.Resample = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
