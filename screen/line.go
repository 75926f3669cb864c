package screen

import (
	"image"
	"math"
)

// walk visits every pixel of the Bresenham line from p0 to p1, both
// endpoints included, in order.
func walk(p0, p1 image.Point, fn func(x, y int)) {
	x, y := p0.X, p0.Y
	dx, dy := absInt(p1.X-x), -absInt(p1.Y-y)
	sx, sy := sign(p1.X-x), sign(p1.Y-y)
	err := dx + dy

	for {
		fn(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Line draws a one pixel wide line. Both endpoints are plotted.
func (img *Image) Line(p0, p1 image.Point) {
	walk(p0, p1, img.Plot)
}

// LineWidth draws a line roughly wd pixels thick, centred on the Bresenham
// line from p0 to p1. Widths of one or less fall back to Line.
func (img *Image) LineWidth(p0, p1 image.Point, wd float64) {
	if wd <= 1 {
		img.Line(p0, p1)
		return
	}
	if p0 == p1 {
		img.Plot(p0.X, p0.Y)
		return
	}

	dx, dy := absInt(p1.X-p0.X), absInt(p1.Y-p0.Y)
	ed := math.Hypot(float64(dx), float64(dy))
	limit := ed * (wd + 1) / 2

	// Thicken across the minor axis: vertically for shallow lines,
	// horizontally for steep ones.
	if dx >= dy {
		major := float64(dx)
		walk(p0, p1, func(x, y int) {
			img.Plot(x, y)
			for k := 1; float64(k)*major < limit; k++ {
				img.Plot(x, y-k)
				img.Plot(x, y+k)
			}
		})
		return
	}
	major := float64(dy)
	walk(p0, p1, func(x, y int) {
		img.Plot(x, y)
		for k := 1; float64(k)*major < limit; k++ {
			img.Plot(x-k, y)
			img.Plot(x+k, y)
		}
	})
}

// LineOffset draws the line from p0 to p1 along with copies of it shifted
// horizontally by every integer offset in [-wd/2, wd/2).
func (img *Image) LineOffset(p0, p1 image.Point, wd int) {
	img.Line(p0, p1)
	for w := -wd / 2; w < wd-wd/2; w++ {
		if w == 0 {
			continue
		}
		shift := image.Pt(w, 0)
		img.Line(p0.Add(shift), p1.Add(shift))
	}
}

// Polyline connects consecutive points.
func (img *Image) Polyline(pts []image.Point, wd float64) {
	for i := 1; i < len(pts); i++ {
		img.LineWidth(pts[i-1], pts[i], wd)
	}
}

// PolylineOffset connects consecutive points with LineOffset strokes.
func (img *Image) PolylineOffset(pts []image.Point, wd int) {
	for i := 1; i < len(pts); i++ {
		img.LineOffset(pts[i-1], pts[i], wd)
	}
}

// Polygon connects consecutive points and closes the shape.
func (img *Image) Polygon(pts []image.Point, wd float64) {
	if len(pts) == 0 {
		return
	}
	img.Polyline(pts, wd)
	if len(pts) > 2 {
		img.LineWidth(pts[len(pts)-1], pts[0], wd)
	}
}
