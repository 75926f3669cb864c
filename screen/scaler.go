package screen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// MaxScale is the largest factor Scale honours.
const MaxScale = 16

// Scale enlarges src by an integer factor with nearest neighbour sampling
// so pixel edges stay crisp. The factor is clamped to [1, MaxScale].
func Scale(src image.Image, factor int) *image.RGBA {
	factor = clampInt(1, MaxScale, factor)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// ScalePaletted is Scale followed by a conversion to pal. The frame only
// holds palette colors, so no dithering is needed.
func ScalePaletted(src image.Image, factor int, pal color.Palette) *image.Paletted {
	scaled := Scale(src, factor)
	dst := image.NewPaletted(scaled.Bounds(), pal)
	draw.Draw(dst, dst.Bounds(), scaled, image.Point{}, draw.Src)
	return dst
}
