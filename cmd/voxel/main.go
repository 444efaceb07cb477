//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"voxel-space/internal/app"
	"voxel-space/internal/logger"
)

func main() {
	c := parseCLI()
	if c.pick && !c.headless {
		pickMaps(flag.CommandLine)
	}
	cfg, s := prepare(c)
	if cfg == nil {
		return
	}
	defer logger.Sync()

	if c.headless {
		runHeadless(c, s)
		return
	}

	game := app.New(s, app.Options{
		Scale:       cfg.Window.Scale,
		ShowHUD:     cfg.Window.ShowHUD,
		ShowMinimap: cfg.Window.ShowMinimap,
	})

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal("running game", err)
	}
}
