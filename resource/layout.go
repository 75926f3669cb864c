package resource

import "image"

const (
	CatWidth  = 150
	CatHeight = 340

	FaceWidth  = 80
	FaceHeight = 80

	DateWidth = 10
	MoonWidth = 16

	TailHeight = 90
)

// Layout is the widget geometry. Every dynamic sprite owns one rectangle
// of the master frame.
type Layout struct {
	Width, Height int

	Face image.Rectangle
	Eyes image.Rectangle
	Tail image.Rectangle
	Date image.Rectangle
	Moon image.Rectangle

	// TailPivot is where the tail hangs from, relative to the tail
	// rectangle. It sits above the rectangle, under the body.
	TailPivot image.Point
}

func DefaultLayout() Layout {
	tailY := CatHeight - TailHeight
	faceAt := image.Pt(CatWidth/2-FaceWidth/2-1, 110)
	dateAt := image.Pt(CatWidth/2-DateWidth/2+1, tailY-4*DateWidth)
	moonAt := image.Pt(CatWidth/2+CatWidth/5+2, tailY-4*MoonWidth)

	return Layout{
		Width:     CatWidth,
		Height:    CatHeight,
		Face:      image.Rectangle{faceAt, faceAt.Add(image.Pt(FaceWidth, FaceHeight))},
		Eyes:      image.Rect(47, 38, 47+56, 38+26),
		Tail:      image.Rect(0, tailY, CatWidth, CatHeight),
		Date:      image.Rectangle{dateAt, dateAt.Add(image.Pt(DateWidth+2, DateWidth+2))},
		Moon:      image.Rectangle{moonAt, moonAt.Add(image.Pt(MoonWidth, MoonWidth))},
		TailPivot: image.Pt(74, -15),
	}
}

// Bounds is the whole widget.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// Center is the middle of the rectangle in its own coordinates.
func Center(r image.Rectangle) image.Point {
	return image.Pt(r.Dx()/2, r.Dy()/2)
}
