package sprite

import (
	"image"
	"math"

	"github.com/fogleman/fauxgl"

	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
)

const (
	eyeStep    = 0.25
	eyeScale   = 23
	eyeSpacing = 31
)

var (
	eyeSphere = fauxgl.V(0, 0, 2)
	eyeOrigin = fauxgl.V(12, 11, 0)
)

// project maps a point of the unit sphere at longitude angle and latitude
// u onto the image with a perspective divide.
func project(u, angle float64) image.Point {
	cu := math.Cos(u)
	v := fauxgl.V(cu*math.Cos(angle), math.Sin(u), cu*math.Sin(angle)).Add(eyeSphere)
	x, y := v.X, v.Y
	if v.Z != 0 {
		x, y = x/v.Z, y/v.Z
	}
	p := fauxgl.V(x, y, 0).MulScalar(eyeScale).Add(eyeOrigin)
	return image.Pt(int(p.X), int(p.Y))
}

// EyeOutline is the closed lens-shaped outline of one eye at time t. It
// runs down one meridian and back up another so it never crosses itself.
func EyeOutline(t float64) []image.Point {
	angle := Swing(eyeAmplitude, t) + math.Pi/2
	pts := make([]image.Point, 0, 32)
	for u := -math.Pi / 2; u < math.Pi/2; u += eyeStep {
		pts = append(pts, project(u, angle+math.Pi/7))
	}
	for u := math.Pi / 2; u > -math.Pi/2; u -= eyeStep {
		pts = append(pts, project(u, angle-math.Pi/7))
	}
	return pts
}

// Eyes draws both pupils into the eyes frame.
func Eyes(l resource.Layout, t float64) *screen.Image {
	img := screen.NewImage(l.Eyes.Dx(), l.Eyes.Dy(), l.Eyes.Min)
	pts := EyeOutline(t)
	for _, shift := range []int{0, eyeSpacing} {
		eye := translate(pts, image.Pt(shift, 0))
		img.Polygon(eye, 1)
		c := centroid(eye)
		img.Fill(c.X, c.Y)
	}
	return img
}
