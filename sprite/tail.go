package sprite

import (
	"fmt"
	"image"
	"math"

	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
)

type TailKind int

const (
	TailTriangle TailKind = iota
	TailHook
)

func (k TailKind) String() string {
	switch k {
	case TailTriangle:
		return "triangle"
	case TailHook:
		return "hook"
	default:
		return fmt.Sprintf("TailKind(%d)", int(k))
	}
}

// Pendulum parameters shared by the tail and the eyes.
const (
	tailAmplitude = 0.4
	eyeAmplitude  = 0.7
	omega         = 1.0
	phi           = 3 * math.Pi / 2
)

// Swing is the pendulum angle at time t. At t=0 it is at full swing to
// one side and it crosses the centre at t=π/2.
func Swing(amplitude, t float64) float64 {
	return amplitude * math.Sin(omega*t+phi)
}

// A real pendulum with a hook would hang a bit to one side, so the hook is
// rotated by hookLean before it swings.
const hookLean = -0.08

var hookPoints = []image.Point{
	{0, 0},
	{0, 76},
	{3, 82},
	{10, 84},
	{18, 82},
	{21, 76},
	{21, 70},
}

var trianglePoints = []image.Point{
	{-5, 0},
	{5, 0},
	{0, 70},
}

const (
	hookWidth   = 7
	hookBob     = 3
	triangleBob = 7
)

// TailGenerator picks the generator for a tail shape once, so the
// animation loop never switches on the kind.
func TailGenerator(kind TailKind) func(resource.Layout, float64) *screen.Image {
	if kind == TailHook {
		return hookTail
	}
	return triangleTail
}

// Tail draws the tail frame at pendulum time t.
func Tail(kind TailKind, l resource.Layout, t float64) *screen.Image {
	return TailGenerator(kind)(l, t)
}

func tailFrame(l resource.Layout) *screen.Image {
	return screen.NewImage(l.Tail.Dx(), l.Tail.Dy(), l.Tail.Min)
}

func hookTail(l resource.Layout, t float64) *screen.Image {
	img := tailFrame(l)
	pts := translate(rotate(rotate(hookPoints, hookLean), Swing(tailAmplitude, t)), l.TailPivot)

	img.PolylineOffset(pts, hookWidth)
	end := pts[len(pts)-1]
	img.FillEllipse(end, hookBob, hookBob)
	return img
}

func triangleTail(l resource.Layout, t float64) *screen.Image {
	img := tailFrame(l)
	angle := Swing(tailAmplitude, t)
	pts := translate(rotate(trianglePoints, angle), l.TailPivot)

	img.Polygon(pts, 1)
	c := centroid(pts)
	img.Fill(c.X, c.Y)

	bob := translate(rotate([]image.Point{{0, 70 + triangleBob - 1}}, angle), l.TailPivot)[0]
	img.FillEllipse(bob, triangleBob, triangleBob)
	return img
}
