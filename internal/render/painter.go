//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a frame buffer into an ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter for frames of size w×h.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads fb and draws it onto dst scaled by scale.
func (p *Painter) Blit(dst *ebiten.Image, fb *FrameBuffer, scale int) {
	if fb.Width != p.w || fb.Height != p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(fb.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
