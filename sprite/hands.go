package sprite

import (
	"image"
	"math"

	"github.com/32bitkid/kitkat/screen"
)

type Shape int

const (
	ShapeTriangle Shape = iota
	ShapeDiamond
)

// Hand describes one clock hand. Offset only applies to diamonds: it is
// the distance from the centre to the inner point.
type Hand struct {
	Shape     Shape
	Length    int
	HalfWidth int
	Offset    int
	Filled    bool
}

// Hands of an 80 pixel face: hour and minute are filled triangles, the
// second hand is a diamond riding just past the minute hand.
var (
	HourHand   = Hand{Shape: ShapeTriangle, Length: 16, HalfWidth: 3, Filled: true}
	MinuteHand = Hand{Shape: ShapeTriangle, Length: 28, HalfWidth: 3, Filled: true}
	SecondHand = Hand{Shape: ShapeDiamond, Length: 34, HalfWidth: 2, Offset: 30}
)

// Render draws the hand at fraction of a full turn. Filled hands are
// filled on their own and stamped onto img, so hands already drawn there
// cannot stop the fill.
func (h Hand) Render(img *screen.Image, fraction float64) {
	if !h.Filled {
		h.stroke(img, fraction)
		return
	}
	scratch := screen.NewImage(img.Width(), img.Height(), image.Point{})
	c := h.stroke(scratch, fraction)
	scratch.Fill(c.X, c.Y)
	img.Copy(scratch, 0, 0)
}

// stroke outlines the hand and returns a point inside it.
func (h Hand) stroke(dst screen.Buffer, fraction float64) image.Point {
	if h.Shape == ShapeDiamond {
		return centroid(Diamond(dst, h.Length, h.HalfWidth, h.Offset, fraction))
	}
	return Triangle(dst, h.Length, h.HalfWidth, fraction)
}

func handCenter(dst screen.Buffer) image.Point {
	b := dst.Bounds()
	return image.Pt(b.Dx()/2, b.Dy()/2)
}

// Diamond strokes a kite around the image centre and returns its vertices:
//
//	      1
//	     / \
//	    2   4
//	     \ /
//	      3
//	      |  offset
//	      + centre
func Diamond(dst screen.Buffer, length, halfWidth, offset int, fraction float64) []image.Point {
	c := handCenter(dst)
	sin, cos := math.Sincos(2 * math.Pi * fraction)

	mid := float64(length+offset) / 2
	mc, ms := mid*cos, mid*sin
	wc, ws := float64(halfWidth)*cos, float64(halfWidth)*sin

	pts := []image.Point{
		polar(c, float64(length), sin, cos),
		image.Pt(c.X+round(ms-wc), c.Y-round(mc+ws)),
		polar(c, float64(offset), sin, cos),
		image.Pt(c.X+round(ms+wc), c.Y-round(mc-ws)),
	}
	dst.Polygon(pts, 1)
	return pts
}

// Triangle strokes a narrow triangle whose base straddles the centre and
// returns its centroid.
func Triangle(dst screen.Buffer, length, halfWidth int, fraction float64) image.Point {
	c := handCenter(dst)
	sin, cos := math.Sincos(2 * math.Pi * fraction)
	wc, ws := float64(halfWidth)*cos, float64(halfWidth)*sin

	pts := []image.Point{
		polar(c, float64(length), sin, cos),
		image.Pt(c.X-round(ws+wc), c.Y+round(wc-ws)),
		image.Pt(c.X-round(ws-wc), c.Y+round(wc+ws)),
	}
	dst.Polygon(pts, 1)
	return centroid(pts)
}
