package core

import "math"

// axis resolves one coordinate into the two wrapped lattice indices that
// bracket it and the fractional weight of the second one.
func (m *Map) axis(v float32) (i0, i1 int, t float32) {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, m.Wrap(1), 0
	}
	i0 = m.WrapFloat(v)
	return i0, m.Wrap(i0 + 1), v - float32(f)
}

// SampleHeight bilinearly interpolates the height grid at (x, y).
func (m *Map) SampleHeight(x, y float32) float32 {
	x0, x1, tx := m.axis(x)
	y0, y1, ty := m.axis(y)

	h := m.height.data
	n := m.n
	h00 := float32(h[n*y0+x0])
	h10 := float32(h[n*y0+x1])
	h01 := float32(h[n*y1+x0])
	h11 := float32(h[n*y1+x1])

	h0 := h00*(1-tx) + h10*tx
	h1 := h01*(1-tx) + h11*tx
	return h0*(1-ty) + h1*ty
}

// SampleColor bilinearly interpolates the color grid at (x, y). Each channel
// is truncated after the horizontal pass and again after the vertical pass.
func (m *Map) SampleColor(x, y float32) (r, g, b uint8) {
	x0, x1, tx := m.axis(x)
	y0, y1, ty := m.axis(y)

	c := m.color.data
	n := m.n
	c00 := c[(n*y0+x0)*3:]
	c10 := c[(n*y0+x1)*3:]
	c01 := c[(n*y1+x0)*3:]
	c11 := c[(n*y1+x1)*3:]

	var out [3]uint8
	for ch := 0; ch < 3; ch++ {
		top := lerpTrunc(c00[ch], c10[ch], tx)
		bottom := lerpTrunc(c01[ch], c11[ch], tx)
		out[ch] = lerpTrunc(top, bottom, ty)
	}
	return out[0], out[1], out[2]
}

func lerpTrunc(a, b uint8, t float32) uint8 {
	return uint8(float32(a)*(1-t) + float32(b)*t)
}
