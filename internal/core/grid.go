package core

import "math"

// HeightGrid stores an N×N grid of 8-bit heights in row-major order.
type HeightGrid struct {
	n    int
	data []uint8
}

// NewHeightGrid adopts data as an n×n height grid.
func NewHeightGrid(n int, data []uint8) (*HeightGrid, error) {
	if n <= 0 {
		return nil, &ConfigurationError{What: "map size", Want: 1, Got: n}
	}
	if len(data) != n*n {
		return nil, &ConfigurationError{What: "height grid length", Want: n * n, Got: len(data)}
	}
	return &HeightGrid{n: n, data: data}, nil
}

// Size returns the edge length of the grid.
func (g *HeightGrid) Size() int { return g.n }

// Cells exposes the backing slice. Callers must not modify it.
func (g *HeightGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *HeightGrid) Index(x, y int) int { return y*g.n + x }

// ColorGrid stores an N×N grid of packed RGB triples in row-major order.
type ColorGrid struct {
	n    int
	data []uint8
}

// NewColorGrid adopts data as an n×n RGB grid.
func NewColorGrid(n int, data []uint8) (*ColorGrid, error) {
	if n <= 0 {
		return nil, &ConfigurationError{What: "map size", Want: 1, Got: n}
	}
	if len(data) != n*n*3 {
		return nil, &ConfigurationError{What: "color grid length", Want: n * n * 3, Got: len(data)}
	}
	return &ColorGrid{n: n, data: data}, nil
}

// Size returns the edge length of the grid.
func (g *ColorGrid) Size() int { return g.n }

// Cells exposes the backing slice. Callers must not modify it.
func (g *ColorGrid) Cells() []uint8 { return g.data }

// Offset returns the byte offset of the red channel of in-range cell (x, y).
func (g *ColorGrid) Offset(x, y int) int { return (y*g.n + x) * 3 }

// Map pairs a height grid with its positionally aligned color grid. The map
// tiles infinitely: every coordinate is wrapped onto the torus before lookup.
type Map struct {
	n      int
	mask   int
	height *HeightGrid
	color  *ColorGrid
}

// NewMap validates the raw buffers and builds an immutable n×n map.
func NewMap(n int, heights, colors []uint8) (*Map, error) {
	hg, err := NewHeightGrid(n, heights)
	if err != nil {
		return nil, err
	}
	cg, err := NewColorGrid(n, colors)
	if err != nil {
		return nil, err
	}
	m := &Map{n: n, mask: -1, height: hg, color: cg}
	if n&(n-1) == 0 {
		m.mask = n - 1
	}
	return m, nil
}

// Size returns N.
func (m *Map) Size() int { return m.n }

// Heights exposes the height grid.
func (m *Map) Heights() *HeightGrid { return m.height }

// Colors exposes the color grid.
func (m *Map) Colors() *ColorGrid { return m.color }

// Wrap applies toroidal wrapping to a single integer coordinate.
func (m *Map) Wrap(v int) int {
	if m.mask >= 0 {
		return v & m.mask
	}
	v %= m.n
	if v < 0 {
		v += m.n
	}
	return v
}

// WrapFloat floors v and wraps it onto the map. Non-finite input maps to 0.
func (m *Map) WrapFloat(v float32) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MinInt32 && f < math.MaxInt32 {
		return m.Wrap(int(f))
	}
	return m.Wrap(int(math.Mod(f, float64(m.n))))
}

// HeightAt returns the stored height of the wrapped cell (x, y).
func (m *Map) HeightAt(x, y int) uint8 {
	return m.height.data[m.Wrap(y)*m.n+m.Wrap(x)]
}

// ColorAt returns the stored color of the wrapped cell (x, y).
func (m *Map) ColorAt(x, y int) (r, g, b uint8) {
	off := (m.Wrap(y)*m.n + m.Wrap(x)) * 3
	c := m.color.data[off : off+3 : off+3]
	return c[0], c[1], c[2]
}
