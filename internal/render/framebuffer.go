package render

import (
	"image"
	"image/color"

	"voxel-space/internal/core"
)

// FrameBuffer is a row-major RGBA raster, 4 bytes per pixel.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a w×h frame buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	return &FrameBuffer{Width: w, Height: h, Pix: make([]byte, w*h*4)}, nil
}

// WrapFrameBuffer adopts a caller-owned pixel slice of exactly w*h*4 bytes.
func WrapFrameBuffer(pix []byte, w, h int) (*FrameBuffer, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	if len(pix) != w*h*4 {
		return nil, &core.ConfigurationError{What: "frame buffer length", Want: w * h * 4, Got: len(pix)}
	}
	return &FrameBuffer{Width: w, Height: h, Pix: pix}, nil
}

func checkDims(w, h int) error {
	if w <= 0 {
		return &core.ConfigurationError{What: "frame width", Want: ">0", Got: w}
	}
	if h <= 0 {
		return &core.ConfigurationError{What: "frame height", Want: ">0", Got: h}
	}
	return nil
}

// At returns the pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	i := (y*fb.Width + x) * 4
	p := fb.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Image returns an image.RGBA view sharing the buffer's pixels.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pix, Stride: fb.Width * 4, Rect: image.Rect(0, 0, fb.Width, fb.Height)}
}

// fillRow paints every pixel of row y with c.
func (fb *FrameBuffer) fillRow(y int, c color.RGBA) {
	row := fb.Pix[y*fb.Width*4 : (y+1)*fb.Width*4]
	for base := 0; base < len(row); base += 4 {
		row[base+0] = c.R
		row[base+1] = c.G
		row[base+2] = c.B
		row[base+3] = c.A
	}
}

// fillColumn paints rows [y0, y1) of column x with c, clipped to the buffer.
func (fb *FrameBuffer) fillColumn(x, y0, y1 int, c color.RGBA) {
	if y0 < 0 {
		y0 = 0
	}
	if y1 > fb.Height {
		y1 = fb.Height
	}
	stride := fb.Width * 4
	for base := y0*stride + x*4; y0 < y1; y0++ {
		fb.Pix[base+0] = c.R
		fb.Pix[base+1] = c.G
		fb.Pix[base+2] = c.B
		fb.Pix[base+3] = c.A
		base += stride
	}
}
