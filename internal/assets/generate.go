package assets

import (
	"image/color"
	"math"

	"voxel-space/internal/core"
)

const (
	waterLevel = 0.32
	sandLevel  = 0.36
	grassLevel = 0.62
	rockLevel  = 0.82
)

var (
	deepWater    = color.NRGBA{R: 20, G: 50, B: 110, A: 255}
	shallowWater = color.NRGBA{R: 55, G: 110, B: 170, A: 255}
	sand         = color.NRGBA{R: 205, G: 190, B: 140, A: 255}
	lowGrass     = color.NRGBA{R: 85, G: 140, B: 60, A: 255}
	highGrass    = color.NRGBA{R: 50, G: 100, B: 45, A: 255}
	rock         = color.NRGBA{R: 115, G: 100, B: 85, A: 255}
	snow         = color.NRGBA{R: 235, G: 235, B: 240, A: 255}
)

// Generate builds an n×n map from seeded fractal value noise. The noise
// lattice wraps with the map so the terrain tiles without seams. The same
// seed always yields the same map.
func Generate(n int, seed int64) (*core.Map, error) {
	if n <= 0 {
		return nil, &core.ConfigurationError{What: "map size", Want: 1, Got: n}
	}
	rng := core.NewRNG(seed)
	field := make([]float32, n*n)

	amp := float32(1)
	for period := 4; period <= n && period <= 256; period *= 2 {
		addOctave(field, n, period, amp, rng)
		amp *= 0.5
	}
	if n < 4 {
		addOctave(field, n, n, 1, rng)
	}
	normalize(field)

	heights := make([]uint8, n*n)
	colors := make([]uint8, n*n*3)
	for i, v := range field {
		// Sharper peaks, flatter lowlands.
		v = float32(math.Pow(float64(v), 1.3))
		c := terrainColor(v)
		jitter := (rng.Float32() - 0.5) * 0.08
		if v > waterLevel {
			c = blendColors(c, color.NRGBA{A: 255}, float64(max(jitter, 0)))
			c = blendColors(c, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, float64(max(-jitter, 0)))
		} else {
			v = waterLevel
		}
		heights[i] = uint8(v*255 + 0.5)
		colors[i*3+0] = c.R
		colors[i*3+1] = c.G
		colors[i*3+2] = c.B
	}
	return core.NewMap(n, heights, colors)
}

// addOctave accumulates one layer of smooth value noise whose lattice has
// period×period cells stretched across the map.
func addOctave(field []float32, n, period int, amp float32, rng *core.RNG) {
	lattice := make([]float32, period*period)
	for i := range lattice {
		lattice[i] = rng.Float32()
	}
	step := float32(period) / float32(n)
	for y := 0; y < n; y++ {
		fy := float32(y) * step
		y0 := int(fy)
		ty := smooth(fy - float32(y0))
		y1 := (y0 + 1) % period
		for x := 0; x < n; x++ {
			fx := float32(x) * step
			x0 := int(fx)
			tx := smooth(fx - float32(x0))
			x1 := (x0 + 1) % period

			top := lerp(lattice[y0*period+x0], lattice[y0*period+x1], tx)
			bottom := lerp(lattice[y1*period+x0], lattice[y1*period+x1], tx)
			field[y*n+x] += lerp(top, bottom, ty) * amp
		}
	}
}

func normalize(field []float32) {
	lo, hi := field[0], field[0]
	for _, v := range field {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	for i, v := range field {
		if span == 0 {
			field[i] = 0
			continue
		}
		field[i] = (v - lo) / span
	}
}

func terrainColor(v float32) color.NRGBA {
	switch {
	case v <= waterLevel:
		return blendColors(deepWater, shallowWater, float64(v/waterLevel))
	case v <= sandLevel:
		return sand
	case v <= grassLevel:
		return blendColors(lowGrass, highGrass, float64((v-sandLevel)/(grassLevel-sandLevel)))
	case v <= rockLevel:
		return blendColors(highGrass, rock, float64((v-grassLevel)/(rockLevel-grassLevel)))
	default:
		return blendColors(rock, snow, float64((v-rockLevel)/(1-rockLevel)))
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: 255,
	}
}

func smooth(t float32) float32 { return t * t * (3 - 2*t) }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }
