package screen

import "image"

// Quadrants selects which quarters of an ellipse are drawn, in the order
// I (upper right), II (upper left), III (lower left), IV (lower right) as
// they appear on screen.
type Quadrants [4]bool

var (
	AllQuadrants = Quadrants{true, true, true, true}
	RightHalf    = Quadrants{true, false, false, true}
	LeftHalf     = Quadrants{false, true, true, false}
	UpperHalf    = Quadrants{true, true, false, false}
	LowerHalf    = Quadrants{false, false, true, true}
)

// Ellipse draws the outline of an axis aligned ellipse with semi axes a
// (horizontal) and b (vertical) around c. A stroke width above one draws
// that many concentric rings, shrinking inwards.
func (img *Image) Ellipse(c image.Point, a, b int, q Quadrants, wd float64) {
	rings := int(wd)
	if rings < 1 {
		rings = 1
	}
	for i := 0; i < rings && a-i >= 0 && b-i >= 0; i++ {
		img.ellipse(c, a-i, b-i, q)
	}
}

// FillEllipse draws a solid ellipse. It is filled on its own, so whatever
// is already drawn under it does not stop the fill.
func (img *Image) FillEllipse(c image.Point, a, b int) {
	scratch := NewImage(2*a+1, 2*b+1, image.Point{})
	local := image.Pt(a, b)
	scratch.ellipse(local, a, b, AllQuadrants)
	scratch.Fill(local.X, local.Y)
	img.Copy(scratch, c.X-a, c.Y-b)
}

func (img *Image) quadrantPlot(c image.Point, x, y int, q Quadrants) {
	// x runs from -a to 0, so c.X-x is on the right.
	if q[0] {
		img.Plot(c.X-x, c.Y-y)
	}
	if q[1] {
		img.Plot(c.X+x, c.Y-y)
	}
	if q[2] {
		img.Plot(c.X+x, c.Y+y)
	}
	if q[3] {
		img.Plot(c.X-x, c.Y+y)
	}
}

func (img *Image) ellipse(c image.Point, a, b int, q Quadrants) {
	if a == 0 && b == 0 {
		img.Plot(c.X, c.Y)
		return
	}

	x, y := -a, 0
	aa, bb := int64(a)*int64(a), int64(b)*int64(b)
	e2 := int64(b)
	dx := (1 + 2*int64(x)) * e2 * e2
	dy := int64(x) * int64(x)
	err := dx + dy

	for {
		img.quadrantPlot(c, x, y, q)
		e2 = 2 * err
		if e2 >= dx {
			x++
			dx += 2 * bb
			err += dx
		}
		if e2 <= dy {
			y++
			dy += 2 * aa
			err += dy
		}
		if x > 0 {
			break
		}
	}

	// Flat ellipses stop early; finish the tips.
	for y < b {
		y++
		if q[0] || q[1] {
			img.Plot(c.X, c.Y-y)
		}
		if q[2] || q[3] {
			img.Plot(c.X, c.Y+y)
		}
	}
}
