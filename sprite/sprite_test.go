package sprite

import (
	"image"
	"math"
	"testing"

	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
)

func newTable(t *testing.T) *resource.Table {
	t.Helper()
	tbl, err := resource.NewTable(resource.DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

// sameGlyph reports whether img holds glyph with its top-left corner at (x, y).
func sameGlyph(img, glyph *screen.Image, x, y int) bool {
	for gy := 0; gy < glyph.Height(); gy++ {
		for gx := 0; gx < glyph.Width(); gx++ {
			if img.Get(x+gx, y+gy) != glyph.Get(gx, gy) {
				return false
			}
		}
	}
	return true
}

func TestDate(t *testing.T) {
	tbl := newTable(t)
	const outline = 4 * (resource.DateWidth + 1)
	units := image.Pt(resource.DateWidth/2+1, 2)

	t.Run("31", func(t *testing.T) {
		img := Date(tbl, 31)
		if img.Count() != outline {
			t.Fatalf("expected only the outline, got\n%s", img)
		}
	})

	t.Run("5", func(t *testing.T) {
		img := Date(tbl, 5)
		if !sameGlyph(img, tbl.Digits[5], units.X, units.Y) {
			t.Fatalf("expected 5 in the units place\n%s", img)
		}
		if img.Count() != outline+tbl.Digits[5].Count() {
			t.Fatalf("expected no tens digit\n%s", img)
		}
	})

	t.Run("23", func(t *testing.T) {
		img := Date(tbl, 23)
		if !sameGlyph(img, tbl.Digits[2], 1, 2) || !sameGlyph(img, tbl.Digits[3], units.X, units.Y) {
			t.Fatalf("expected 2 then 3\n%s", img)
		}
	})

	t.Run("30", func(t *testing.T) {
		img := Date(tbl, 30)
		if !sameGlyph(img, tbl.Digits[3], 1, 2) || !sameGlyph(img, tbl.Digits[0], units.X, units.Y) {
			t.Fatalf("expected 3 then 0\n%s", img)
		}
	})

	t.Run("0", func(t *testing.T) {
		if img := Date(tbl, 0); img.Count() != outline {
			t.Fatalf("expected only the outline, got\n%s", img)
		}
	})

	if p := Date(tbl, 12).Placement(); p != tbl.Date {
		t.Fatalf("date placed at %v, want %v", p, tbl.Date)
	}
}

func TestTriangleHand(t *testing.T) {
	img := screen.NewImage(80, 80, image.Point{})
	c := Triangle(img, 28, 3, 0)
	if img.Get(40, 12) != screen.Foreground {
		t.Fatalf("expected the tip at 12 o'clock\n%s", img)
	}
	if c != image.Pt(40, 32) {
		t.Fatalf("unexpected centroid %v", c)
	}

	img.Clear()
	Triangle(img, 28, 3, 0.25)
	if img.Get(68, 40) != screen.Foreground {
		t.Fatalf("expected the tip at 3 o'clock\n%s", img)
	}
}

func TestDiamondHand(t *testing.T) {
	img := screen.NewImage(80, 80, image.Point{})
	pts := Diamond(img, 34, 2, 30, 0.5)
	if pts[0] != image.Pt(40, 74) || pts[2] != image.Pt(40, 70) {
		t.Fatalf("unexpected vertices %v", pts)
	}
	for _, p := range pts {
		if img.Get(p.X, p.Y) != screen.Foreground {
			t.Fatalf("vertex %v not drawn\n%s", p, img)
		}
	}
	if img.Get(40, 40) != screen.Background {
		t.Fatal("the diamond should not reach the centre")
	}
}

func TestHandRender(t *testing.T) {
	outline := screen.NewImage(80, 80, image.Point{})
	Triangle(outline, MinuteHand.Length, MinuteHand.HalfWidth, 0.6)

	filled := screen.NewImage(80, 80, image.Point{})
	MinuteHand.Render(filled, 0.6)
	if filled.Count() <= outline.Count() {
		t.Fatalf("expected a filled hand\n%s", filled)
	}

	second := screen.NewImage(80, 80, image.Point{})
	SecondHand.Render(second, 0.1)
	if second.Count() == 0 {
		t.Fatal("second hand not drawn")
	}
}

func TestOverlappingHandsStayFilled(t *testing.T) {
	alone := screen.NewImage(80, 80, image.Point{})
	MinuteHand.Render(alone, 0)

	both := screen.NewImage(80, 80, image.Point{})
	HourHand.Render(both, 0)
	MinuteHand.Render(both, 0)

	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			if alone.Get(x, y) == screen.Foreground && both.Get(x, y) != screen.Foreground {
				t.Fatalf("minute hand lost (%d,%d) under the hour hand\n%s", x, y, both)
			}
		}
	}
}

func TestEyes(t *testing.T) {
	l := resource.DefaultLayout()
	if n := len(EyeOutline(0)); n != 26 {
		t.Fatalf("expected 26 outline points, got %d", n)
	}
	for i := 0; i < 16; i++ {
		img := Eyes(l, float64(i)*math.Pi/16)
		if img.Placement() != l.Eyes {
			t.Fatalf("eyes placed at %v", img.Placement())
		}
		if img.Get(0, l.Eyes.Dy()-1) != screen.Background {
			t.Fatalf("frame %d: fill leaked\n%s", i, img)
		}
		for y := 0; y < img.Height(); y++ {
			for x := 0; x+eyeSpacing < img.Width(); x++ {
				if img.Get(x, y) != img.Get(x+eyeSpacing, y) {
					t.Fatalf("frame %d: eyes differ at (%d,%d)\n%s", i, x, y, img)
				}
			}
		}
	}
}

func TestEyesLookAround(t *testing.T) {
	l := resource.DefaultLayout()
	left, right := Eyes(l, 0), Eyes(l, math.Pi)
	if left.String() == right.String() {
		t.Fatal("expected the pupils to move")
	}
}

func TestTailSwings(t *testing.T) {
	l := resource.DefaultLayout()
	for _, kind := range []TailKind{TailTriangle, TailHook} {
		gen := TailGenerator(kind)
		a, b := gen(l, 0), gen(l, math.Pi)
		if a.Placement() != l.Tail {
			t.Fatalf("%v: tail placed at %v", kind, a.Placement())
		}
		if a.Count() == 0 || b.Count() == 0 {
			t.Fatalf("%v: empty tail", kind)
		}
		if mean(a) >= float64(l.TailPivot.X) || mean(b) <= float64(l.TailPivot.X) {
			t.Fatalf("%v: expected opposite swings, got %.1f and %.1f", kind, mean(a), mean(b))
		}
		if a.Get(0, a.Height()-1) != screen.Background {
			t.Fatalf("%v: fill leaked\n%s", kind, a)
		}
	}
	if Tail(TailHook, l, 1).String() == Tail(TailTriangle, l, 1).String() {
		t.Fatal("expected different shapes")
	}
}

// mean is the average x of the foreground pixels.
func mean(img *screen.Image) float64 {
	var sum, n int
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.Get(x, y) == screen.Foreground {
				sum += x
				n++
			}
		}
	}
	return float64(sum) / float64(n)
}

func TestSwing(t *testing.T) {
	if s := Swing(0.4, 0); math.Abs(s+0.4) > 1e-12 {
		t.Fatalf("expected full swing at t=0, got %v", s)
	}
	if s := Swing(0.4, math.Pi/2); math.Abs(s) > 1e-12 {
		t.Fatalf("expected centre at t=π/2, got %v", s)
	}
}

func TestCyclePingPong(t *testing.T) {
	c := NewCycle(4, func(t float64) *screen.Image {
		return screen.NewImage(1+int(t*10), 1, image.Point{})
	})
	if c.Len() != 4 {
		t.Fatalf("expected 4 frames, got %d", c.Len())
	}
	want := []int{0, 1, 2, 3, 3, 2, 1, 0, 0, 1}
	for i, w := range want {
		if c.Index() != w {
			t.Fatalf("step %d: expected frame %d, got %d", i, w, c.Index())
		}
		if img := c.Next(); img != c.Frame(w) {
			t.Fatalf("step %d: Next returned the wrong frame", i)
		}
	}
}
