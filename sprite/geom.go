package sprite

import (
	"image"
	"math"

	"github.com/fogleman/fauxgl"
)

var zAxis = fauxgl.V(0, 0, 1)

// rotate turns points about the origin by angle radians:
//
//	x' =  x·cos + y·sin
//	y' = -x·sin + y·cos
//
// Results are truncated towards zero.
func rotate(pts []image.Point, angle float64) []image.Point {
	m := fauxgl.Rotate(zAxis, angle)
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		v := m.MulPosition(fauxgl.V(float64(p.X), float64(p.Y), 0))
		out[i] = image.Pt(int(v.X), int(v.Y))
	}
	return out
}

func translate(pts []image.Point, d image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

// centroid is the mean of the vertices.
func centroid(pts []image.Point) image.Point {
	if len(pts) == 0 {
		return image.Point{}
	}
	var sx, sy int
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	return image.Pt(sx/len(pts), sy/len(pts))
}

// polar places a point r away from c at the given fraction of a circle,
// clockwise from twelve o'clock.
func polar(c image.Point, r float64, sin, cos float64) image.Point {
	return image.Pt(c.X+round(r*sin), c.Y-round(r*cos))
}

func round(v float64) int {
	return int(math.Round(v))
}
