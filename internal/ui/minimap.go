//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"voxel-space/internal/core"
)

// Minimap draws a scaled-down colormap with the camera's view cone in the
// top-right corner of the screen.
type Minimap struct {
	size    int
	n       int
	img     *ebiten.Image
	pixel   *ebiten.Image
	marker  Marker
	visible bool
}

// NewMinimap builds a size×size minimap of m.
func NewMinimap(m *core.Map, size int, visible bool) *Minimap {
	if size <= 0 {
		size = 1
	}
	mm := &Minimap{size: size, n: m.Size(), visible: visible}
	mm.img = ebiten.NewImage(size, size)
	mm.img.WritePixels(MinimapPixels(m, size, 220))
	mm.pixel = ebiten.NewImage(1, 1)
	mm.pixel.Fill(color.White)
	return mm
}

// Toggle flips visibility.
func (mm *Minimap) Toggle() { mm.visible = !mm.visible }

// Update positions the camera marker for the next Draw.
func (mm *Minimap) Update(cam core.Camera, reach float32) {
	if !mm.visible {
		return
	}
	mm.marker = CameraMarker(cam, mm.n, mm.size, reach)
}

// Draw paints the minimap onto screen.
func (mm *Minimap) Draw(screen *ebiten.Image) {
	if !mm.visible {
		return
	}
	ox := float64(screen.Bounds().Dx() - mm.size - hudPadding)
	oy := float64(hudPadding)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(mm.img, op)

	cone := color.RGBA{R: 255, G: 230, B: 90, A: 230}
	p, l, r := mm.marker.Pos, mm.marker.Left, mm.marker.Right
	mm.drawLine(screen, ox+float64(p.X), oy+float64(p.Y), ox+float64(l.X), oy+float64(l.Y), 1, cone)
	mm.drawLine(screen, ox+float64(p.X), oy+float64(p.Y), ox+float64(r.X), oy+float64(r.Y), 1, cone)
	mm.drawPoint(screen, ox+float64(p.X), oy+float64(p.Y), 4, color.RGBA{R: 230, G: 40, B: 40, A: 255})
}

func (mm *Minimap) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(mm.pixel, op)
}

func (mm *Minimap) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || math.IsNaN(length) || math.IsInf(length, 0) {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(mm.pixel, op)
}
