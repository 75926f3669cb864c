package screen

import (
	"image"
	"testing"
)

func TestEllipseSymmetry(t *testing.T) {
	c := image.Pt(20, 15)
	for _, ab := range [][2]int{{10, 6}, {6, 10}, {1, 8}, {8, 1}, {12, 12}, {3, 2}} {
		img := NewImage(41, 31, image.Point{})
		img.Ellipse(c, ab[0], ab[1], AllQuadrants, 1)
		if img.Count() == 0 {
			t.Fatalf("a=%d b=%d: nothing drawn", ab[0], ab[1])
		}
		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				if img.Get(x, y) != Foreground {
					continue
				}
				mx, my := 2*c.X-x, 2*c.Y-y
				if img.Get(mx, y) != Foreground || img.Get(x, my) != Foreground {
					t.Fatalf("a=%d b=%d: (%d,%d) has no mirror\n%s", ab[0], ab[1], x, y, img)
				}
			}
		}
	}
}

func TestEllipseExtents(t *testing.T) {
	c := image.Pt(20, 15)
	img := NewImage(41, 31, image.Point{})
	img.Ellipse(c, 10, 6, AllQuadrants, 1)
	for _, p := range []image.Point{{30, 15}, {10, 15}, {20, 9}, {20, 21}} {
		if img.Get(p.X, p.Y) != Foreground {
			t.Errorf("expected %v on the ellipse\n%s", p, img)
		}
	}
}

func TestFlatEllipseTips(t *testing.T) {
	img := NewImage(11, 21, image.Point{})
	img.Ellipse(image.Pt(5, 10), 1, 8, AllQuadrants, 1)
	if img.Get(5, 2) != Foreground || img.Get(5, 18) != Foreground {
		t.Fatalf("expected both tips drawn\n%s", img)
	}
}

func TestEllipseQuadrants(t *testing.T) {
	c := image.Pt(10, 10)

	right := NewImage(21, 21, image.Point{})
	right.Ellipse(c, 6, 6, RightHalf, 1)
	left := NewImage(21, 21, image.Point{})
	left.Ellipse(c, 6, 6, LeftHalf, 1)

	for y := 0; y < 21; y++ {
		for x := 0; x < c.X; x++ {
			if right.Get(x, y) == Foreground {
				t.Fatalf("right half drew (%d,%d)\n%s", x, y, right)
			}
		}
		for x := c.X + 1; x < 21; x++ {
			if left.Get(x, y) == Foreground {
				t.Fatalf("left half drew (%d,%d)\n%s", x, y, left)
			}
		}
	}

	upper := NewImage(21, 21, image.Point{})
	upper.Ellipse(c, 6, 6, Quadrants{true, false, false, false}, 1)
	if upper.Get(16, 10) != Foreground || upper.Get(10, 4) != Foreground {
		t.Fatalf("quadrant I should run from 3 to 12 o'clock\n%s", upper)
	}
	if upper.Get(4, 10) == Foreground || upper.Get(10, 16) == Foreground {
		t.Fatalf("quadrant I drew outside itself\n%s", upper)
	}
}

func TestEllipseRings(t *testing.T) {
	c := image.Pt(10, 10)
	img := NewImage(21, 21, image.Point{})
	img.Ellipse(c, 8, 8, AllQuadrants, 3)
	for _, x := range []int{18, 17, 16} {
		if img.Get(x, 10) != Foreground {
			t.Errorf("expected ring pixel at (%d,10)\n%s", x, img)
		}
	}
	if img.Get(15, 10) != Background {
		t.Errorf("expected 3 rings only\n%s", img)
	}
}
