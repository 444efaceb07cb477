//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"voxel-space/internal/core"
	"voxel-space/internal/render"
	"voxel-space/internal/ui"
)

// keyBindings maps held keys to camera controls.
var keyBindings = []struct {
	key ebiten.Key
	ctl core.Controls
}{
	{ebiten.KeyArrowUp, core.Forward},
	{ebiten.KeyArrowDown, core.Back},
	{ebiten.KeyArrowLeft, core.TurnLeft},
	{ebiten.KeyArrowRight, core.TurnRight},
	{ebiten.KeyE, core.Climb},
	{ebiten.KeyD, core.Descend},
	{ebiten.KeyW, core.LookUp},
	{ebiten.KeyS, core.LookDown},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.Painter
	hud     *ui.HUD
	minimap *ui.Minimap
	clock   *core.FrameClock
	scale   int
}

// Options configures the window overlays.
type Options struct {
	Scale       int
	ShowHUD     bool
	ShowMinimap bool
	MinimapSize int
}

// New constructs a Game around s.
func New(s *Session, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.MinimapSize <= 0 {
		opts.MinimapSize = 160
	}
	fb := s.Frame()
	return &Game{
		session: s,
		painter: render.NewPainter(fb.Width, fb.Height),
		hud:     ui.NewHUD(opts.ShowHUD),
		minimap: ui.NewMinimap(s.Renderer().Map(), opts.MinimapSize, opts.ShowMinimap),
		clock:   core.NewFrameClock(),
		scale:   opts.Scale,
	}
}

// Update reads the keyboard, moves the camera and renders the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.minimap.Toggle()
	}

	var ctl core.Controls
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			ctl |= b.ctl
		}
	}

	dt, _ := g.clock.Tick()
	g.session.Advance(ctl, dt)

	g.hud.Update(g.session.Readout())
	g.minimap.Update(g.session.Camera(), g.session.Renderer().Reach(g.session.Camera()))
	return nil
}

// Draw presents the latest frame and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Frame(), g.scale)
	g.minimap.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
