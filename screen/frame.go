package screen

import (
	"image"
	"image/color"
)

// Frame is the master frame buffer: concrete display colors for the whole
// widget, row major.
type Frame struct {
	Width, Height int
	Pix           []Color
}

func NewFrame(width, height int, bg Color) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
	f.Fill(bg)
	return f
}

// Set writes c at (x, y); writes outside the frame are dropped.
func (f *Frame) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = c
}

func (f *Frame) ColorAt(x, y int) Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Transparent
	}
	return f.Pix[y*f.Width+x]
}

func (f *Frame) Fill(c Color) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// FillRect paints r, clipped to the frame.
func (f *Frame) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(f.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = c
		}
	}
}

func (f *Frame) ColorModel() color.Model { return color.RGBAModel }
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }
func (f *Frame) At(x, y int) color.Color { return f.ColorAt(x, y) }

// RGBA converts the frame into an opaque RGBA image.
func (f *Frame) RGBA() *image.RGBA {
	dst := image.NewRGBA(f.Bounds())
	for i, c := range f.Pix {
		o := i * 4
		dst.Pix[o+0] = uint8(c >> 16)
		dst.Pix[o+1] = uint8(c >> 8)
		dst.Pix[o+2] = uint8(c)
		dst.Pix[o+3] = 0xFF
	}
	return dst
}

// Bytes returns the frame as packed RGBA bytes, as a window texture expects.
func (f *Frame) Bytes() []byte {
	return f.RGBA().Pix
}
