//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 14
	hudWidth      = 200
)

// HUD renders the camera readout and key help in the top-left corner.
type HUD struct {
	panel   *ebiten.Image
	lines   []string
	visible bool
}

// NewHUD constructs a HUD. Hidden HUDs skip drawing entirely.
func NewHUD(visible bool) *HUD {
	return &HUD{visible: visible}
}

// Toggle flips visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the HUD is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update caches the text for the next Draw.
func (h *HUD) Update(r Readout) {
	if !h.Visible() {
		return
	}
	h.lines = append(h.lines[:0], r.Lines()...)
	h.lines = append(h.lines, "")
	h.lines = append(h.lines, helpLines...)
}

// Draw paints the HUD panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || len(h.lines) == 0 {
		return
	}
	height := hudPadding*2 + hudLineHeight*len(h.lines)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(hudWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + hudLineHeight*(i+1) - 3
		text.Draw(h.panel, line, face, hudPadding, y, color.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)
}
