// Package assets turns heightmap and colormap images into terrain maps.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"voxel-space/internal/core"
)

// Load decodes a grayscale heightmap and a colormap and builds a map from
// them. When resample is positive both images are first scaled to
// resample×resample.
func Load(heightPath, colorPath string, resample int) (*core.Map, error) {
	heightImg, err := decodeFile(heightPath)
	if err != nil {
		return nil, err
	}
	colorImg, err := decodeFile(colorPath)
	if err != nil {
		return nil, err
	}
	m, err := FromImages(heightImg, colorImg, resample)
	if err != nil {
		return nil, fmt.Errorf("building map from %s and %s: %w", heightPath, colorPath, err)
	}
	return m, nil
}

// FromImages converts decoded images into a map. Both images must be square
// and the same size unless resample is positive.
func FromImages(heightImg, colorImg image.Image, resample int) (*core.Map, error) {
	if resample > 0 {
		heightImg = scale(heightImg, resample)
		colorImg = scale(colorImg, resample)
	}

	hb, cb := heightImg.Bounds(), colorImg.Bounds()
	n := hb.Dx()
	if hb.Dy() != n {
		return nil, &core.ConfigurationError{What: "heightmap rows", Want: n, Got: hb.Dy()}
	}
	if cb.Dx() != n {
		return nil, &core.ConfigurationError{What: "colormap columns", Want: n, Got: cb.Dx()}
	}
	if cb.Dy() != n {
		return nil, &core.ConfigurationError{What: "colormap rows", Want: n, Got: cb.Dy()}
	}
	return core.NewMap(n, grayBytes(heightImg), rgbBytes(colorImg))
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// scale resizes img to n×n with bilinear filtering.
func scale(img image.Image, n int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, n, n))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// grayBytes returns one luminance byte per pixel in row-major order.
func grayBytes(img image.Image) []uint8 {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && g.Stride == b.Dx() && len(g.Pix) == b.Dx()*b.Dy() {
		return g.Pix
	}
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(gray, gray.Bounds(), img, b.Min, xdraw.Src)
	return gray.Pix
}

// rgbBytes returns packed RGB triples in row-major order, dropping alpha.
func rgbBytes(img image.Image) []uint8 {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	out := make([]uint8, b.Dx()*b.Dy()*3)
	for i, j := 0, 0; i < len(nrgba.Pix); i, j = i+4, j+3 {
		out[j+0] = nrgba.Pix[i+0]
		out[j+1] = nrgba.Pix[i+1]
		out[j+2] = nrgba.Pix[i+2]
	}
	return out
}
