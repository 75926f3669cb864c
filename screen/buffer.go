package screen

import "image"

// Commands are the drawing primitives every logical image supports.
type Commands interface {
	Plot(x, y int)
	Line(p0, p1 image.Point)
	LineWidth(p0, p1 image.Point, wd float64)
	Ellipse(c image.Point, a, b int, q Quadrants, wd float64)
	Polygon(pts []image.Point, wd float64)
	Fill(x, y int)
}

type Buffer interface {
	Clear()
	Image() *image.Paletted
	image.PalettedImage
	Commands
}

var _ Buffer = (*Image)(nil)
