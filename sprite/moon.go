package sprite

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
)

// Phase is one of the eight named phases of the moon.
type Phase uint8

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	NewMoon:        "new moon",
	WaxingCrescent: "waxing crescent",
	FirstQuarter:   "first quarter",
	WaxingGibbous:  "waxing gibbous",
	FullMoon:       "full moon",
	WaningGibbous:  "waning gibbous",
	LastQuarter:    "last quarter",
	WaningCrescent: "waning crescent",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

const (
	lunarEpoch   = 978300000 // around 2001-01-01
	lunarOffset  = 0.20439731
	lunationRate = 0.03386319269 // lunations per day
	secondsInDay = 86400
)

// Position is how far through the current lunation t is, in [0, 1).
// Only whole days since the epoch count.
func Position(t time.Time) float64 {
	diff := t.Unix() - lunarEpoch
	days := diff / secondsInDay
	if diff < 0 && diff%secondsInDay != 0 {
		days--
	}
	pos := math.Mod(lunarOffset+float64(days)*lunationRate, 1)
	if pos < 0 {
		pos++
	}
	return pos
}

// PhaseOf rounds a lunation position to the nearest named phase.
func PhaseOf(pos float64) Phase {
	return Phase(int(pos*8+0.5) & 7)
}

const moonRadius = 6

func moonFrame(l resource.Layout) (*screen.Image, image.Point) {
	img := screen.NewImage(resource.MoonWidth, resource.MoonWidth, l.Moon.Min)
	return img, image.Pt(resource.MoonWidth/2, resource.MoonWidth/2)
}

// Moon draws the icon for a phase. The lit part is foreground.
func Moon(l resource.Layout, p Phase) *screen.Image {
	img, c := moonFrame(l)
	r := moonRadius
	terminator := func() {
		img.Line(image.Pt(c.X, c.Y-r), image.Pt(c.X, c.Y+r))
	}

	switch p {
	case NewMoon:
		img.Ellipse(c, r, r, screen.AllQuadrants, 1)
	case WaxingCrescent:
		img.Ellipse(c, r, r, screen.RightHalf, 1)
		img.Ellipse(c.Add(image.Pt(-2, 0)), r-1, r, screen.RightHalf, 1)
		img.Fill(c.X+5, c.Y)
	case FirstQuarter:
		img.Ellipse(c, r, r, screen.RightHalf, 1)
		terminator()
		img.Fill(c.X+1, c.Y)
	case WaxingGibbous:
		img.Ellipse(c, r, r, screen.RightHalf, 1)
		img.Ellipse(c, r-1, r, screen.LeftHalf, 1)
		img.Fill(c.X+1, c.Y)
	case FullMoon:
		img.Ellipse(c, r, r, screen.AllQuadrants, 1)
		img.Fill(c.X, c.Y)
	case WaningGibbous:
		img.Ellipse(c, r, r, screen.LeftHalf, 1)
		img.Ellipse(c, r-2, r, screen.RightHalf, 1)
		img.Fill(c.X+1, c.Y)
	case LastQuarter:
		img.Ellipse(c, r, r, screen.LeftHalf, 1)
		terminator()
		img.Fill(c.X-1, c.Y)
	case WaningCrescent:
		img.Ellipse(c, r, r, screen.LeftHalf, 1)
		img.Ellipse(c.Add(image.Pt(2, 0)), r-1, r, screen.LeftHalf, 1)
		img.Fill(c.X-5, c.Y)
	}
	return img
}

// CornerFill masks the four corners of the icon square so it reads as a
// rounded badge.
func CornerFill(l resource.Layout) *screen.Image {
	img, _ := moonFrame(l)
	w, h := img.Width(), img.Height()

	img.Line(image.Pt(2, 0), image.Pt(0, 2))
	img.Fill(0, 0)
	img.Line(image.Pt(0, h-3), image.Pt(2, h-1))
	img.Fill(0, h-1)
	img.Line(image.Pt(w-1, h-3), image.Pt(w-3, h-1))
	img.Fill(w-1, h-1)
	img.Line(image.Pt(w-3, 0), image.Pt(w-1, 2))
	img.Fill(w-1, 0)
	return img
}

// Sun is a circle with four short rays.
func Sun(l resource.Layout) *screen.Image {
	img, c := moonFrame(l)
	w := resource.MoonWidth

	img.Ellipse(c, moonRadius, moonRadius, screen.AllQuadrants, 1)
	img.Line(image.Pt(w/2, 0), image.Pt(w/2, 2))
	img.Line(image.Pt(w/2, w-2), image.Pt(w/2, w-1))
	img.Line(image.Pt(1, w/2-1), image.Pt(1, w/2))
	img.Line(image.Pt(w-2, w/2-1), image.Pt(w-1, w/2))
	return img
}

// SunBackground is the solid disc behind the sun.
func SunBackground(l resource.Layout) *screen.Image {
	img, c := moonFrame(l)
	img.FillEllipse(c, moonRadius, moonRadius)
	return img
}
