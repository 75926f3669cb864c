package resource

import (
	"image"
	"math"

	"github.com/32bitkid/kitkat/screen"
)

// Layer is a static full-size image and the palette entry it is painted in.
type Layer struct {
	Name string
	Ink  screen.Ink
	*screen.Image
}

const (
	LayerSilhouette = "silhouette"
	LayerBody       = "body"
	LayerTie        = "tie"
)

// solid draws a closed outline on a scratch image, fills it from seed and
// stamps the result onto dst.
func solid(dst *screen.Image, seed image.Point, outline func(*screen.Image)) {
	scratch := screen.NewImage(dst.Width(), dst.Height(), image.Point{})
	outline(scratch)
	scratch.Fill(seed.X, seed.Y)
	dst.Copy(scratch, 0, 0)
}

func disc(dst *screen.Image, c image.Point, a, b int) {
	solid(dst, c, func(img *screen.Image) {
		img.Ellipse(c, a, b, screen.AllQuadrants, 1)
	})
}

func triangle(dst *screen.Image, pts ...image.Point) {
	seed := image.Pt((pts[0].X+pts[1].X+pts[2].X)/3, (pts[0].Y+pts[1].Y+pts[2].Y)/3)
	solid(dst, seed, func(img *screen.Image) {
		img.Polygon(pts, 1)
	})
}

// mirror reflects x about the vertical centre line of the cat.
func (l Layout) mirror(p image.Point) image.Point {
	return image.Pt(l.Width-p.X, p.Y)
}

func (l Layout) silhouette() *screen.Image {
	img := screen.NewImage(l.Width, l.Height, image.Point{})
	cx := l.Width / 2

	disc(img, image.Pt(cx, 58), 50, 46)
	ear := []image.Point{{30, 36}, {36, 0}, {62, 16}}
	triangle(img, ear...)
	triangle(img, l.mirror(ear[0]), l.mirror(ear[1]), l.mirror(ear[2]))

	disc(img, image.Pt(cx, 170), 58, 80)
	disc(img, image.Pt(cx-25, 246), 14, 7)
	disc(img, image.Pt(cx+25, 246), 14, 7)
	return img
}

func (l Layout) body(silhouette *screen.Image) *screen.Image {
	img := screen.NewImage(l.Width, l.Height, image.Point{})
	img.Copy(silhouette, 0, 0)
	cx := l.Width / 2

	// White markings are holes in the body.
	holes := screen.NewImage(l.Width, l.Height, image.Point{})
	face := l.Face.Min.Add(Center(l.Face))
	disc(holes, face, FaceWidth/2-2, FaceHeight/2-2)
	disc(holes, l.Eyes.Min.Add(image.Pt(12, 12)), 12, 12)
	disc(holes, l.Eyes.Min.Add(image.Pt(43, 12)), 12, 12)
	disc(holes, image.Pt(cx, 80), 16, 9)
	for _, w := range [][2]image.Point{
		{{57, 78}, {30, 70}},
		{{57, 82}, {28, 82}},
		{{57, 86}, {32, 95}},
	} {
		holes.Line(w[0], w[1])
		holes.Line(l.mirror(w[0]), l.mirror(w[1]))
	}
	img.Subtract(holes, 0, 0)

	// Nose and mouth.
	triangle(img, image.Pt(cx-4, 74), image.Pt(cx+4, 74), image.Pt(cx, 78))
	img.Line(image.Pt(cx, 78), image.Pt(cx, 82))
	img.Ellipse(image.Pt(cx-4, 82), 4, 3, screen.LowerHalf, 1)
	img.Ellipse(image.Pt(cx+4, 82), 4, 3, screen.LowerHalf, 1)

	// Hour marks.
	for h := 0; h < 12; h++ {
		angle := 2 * math.Pi * float64(h) / 12
		sin, cos := math.Sincos(angle)
		inner, outer := 32.0, 36.0
		if h%3 == 0 {
			inner = 29
		}
		img.Line(
			image.Pt(face.X+int(math.Round(inner*sin)), face.Y-int(math.Round(inner*cos))),
			image.Pt(face.X+int(math.Round(outer*sin)), face.Y-int(math.Round(outer*cos))),
		)
	}
	return img
}

func (l Layout) tie() *screen.Image {
	img := screen.NewImage(l.Width, l.Height, image.Point{})
	cx := l.Width / 2
	knot := image.Pt(cx, 104)

	triangle(img, image.Pt(cx-20, 94), image.Pt(cx-20, 114), knot)
	triangle(img, image.Pt(cx+20, 94), image.Pt(cx+20, 114), knot)
	disc(img, knot, 4, 5)
	return img
}

// Cat builds the static layers in the order they are composited.
func (l Layout) Cat() []Layer {
	silhouette := l.silhouette()
	return []Layer{
		{Name: LayerSilhouette, Ink: screen.InkFace, Image: silhouette},
		{Name: LayerBody, Ink: screen.InkBody, Image: l.body(silhouette)},
		{Name: LayerTie, Ink: screen.InkAccent, Image: l.tie()},
	}
}
