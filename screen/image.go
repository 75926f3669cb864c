package screen

import (
	"image"
	"image/color"
	"strings"

	logxi "github.com/mgutz/logxi/v1"
)

var logger = logxi.New("screen")

func SetLogLevel(level int) { logger.SetLevel(level) }

// Sentinel values stored in an Image. They mark pixels, they are not colors;
// Draw substitutes the display colors.
const (
	Background uint8 = 0
	Foreground uint8 = 1
)

var sentinels = color.Palette{
	color.Gray{Y: 0xFF},
	color.Gray{Y: 0x00},
}

// Image is a monochrome logical image placed at Offset in the master frame.
// The embedded paletted buffer always starts at the origin, so the pixel for
// (x, y) lives at Pix[y*Stride+x].
type Image struct {
	*image.Paletted
	Offset image.Point
}

func NewImage(width, height int, offset image.Point) *Image {
	return &Image{
		Paletted: image.NewPaletted(image.Rect(0, 0, width, height), sentinels),
		Offset:   offset,
	}
}

func (img *Image) Width() int  { return img.Rect.Dx() }
func (img *Image) Height() int { return img.Rect.Dy() }

// Placement is the rectangle the image covers in the master frame.
func (img *Image) Placement() image.Rectangle {
	return img.Rect.Add(img.Offset)
}

func (img *Image) Image() *image.Paletted {
	return img.Paletted
}

func (img *Image) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Rect.Max.X && y < img.Rect.Max.Y
}

// Plot marks (x, y) as foreground. Coordinates outside the image are ignored.
func (img *Image) Plot(x, y int) {
	if !img.inside(x, y) {
		if logger.IsDebug() {
			logger.Debug("plot outside image", "x", x, "y", y, "width", img.Width(), "height", img.Height())
		}
		return
	}
	img.Pix[y*img.Stride+x] = Foreground
}

// Unplot resets (x, y) to background.
func (img *Image) Unplot(x, y int) {
	if !img.inside(x, y) {
		return
	}
	img.Pix[y*img.Stride+x] = Background
}

// Get returns the sentinel at (x, y). Anything outside the image reads as
// foreground so fills treat the border as a wall.
func (img *Image) Get(x, y int) uint8 {
	if !img.inside(x, y) {
		return Foreground
	}
	return img.Pix[y*img.Stride+x]
}

func (img *Image) Clear() {
	for i, max := 0, len(img.Pix); i < max; i++ {
		img.Pix[i] = Background
	}
}

// Outline draws a one pixel frame along the border of the image.
func (img *Image) Outline() {
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		img.Plot(0, y)
		img.Plot(w-1, y)
	}
	for x := 0; x < w; x++ {
		img.Plot(x, 0)
		img.Plot(x, h-1)
	}
}

// Copy stamps the foreground pixels of src with its top-left corner at
// (x, y). The offset of src is ignored.
func (img *Image) Copy(src *Image, x, y int) {
	for sy := 0; sy < src.Height(); sy++ {
		row := src.Pix[sy*src.Stride : sy*src.Stride+src.Width()]
		for sx, v := range row {
			if v == Foreground {
				img.Plot(x+sx, y+sy)
			}
		}
	}
}

// Subtract clears every pixel that is foreground in src, placed at (x, y).
func (img *Image) Subtract(src *Image, x, y int) {
	for sy := 0; sy < src.Height(); sy++ {
		row := src.Pix[sy*src.Stride : sy*src.Stride+src.Width()]
		for sx, v := range row {
			if v == Foreground {
				img.Unplot(x+sx, y+sy)
			}
		}
	}
}

// Crop returns a copy of r, placed at the same position in the frame.
func (img *Image) Crop(r image.Rectangle) *Image {
	dst := NewImage(r.Dx(), r.Dy(), img.Offset.Add(r.Min))
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if img.Get(r.Min.X+x, r.Min.Y+y) == Foreground && img.inside(r.Min.X+x, r.Min.Y+y) {
				dst.Pix[y*dst.Stride+x] = Foreground
			}
		}
	}
	return dst
}

// Count returns the number of foreground pixels.
func (img *Image) Count() int {
	n := 0
	for _, v := range img.Pix {
		if v == Foreground {
			n++
		}
	}
	return n
}

// Draw composites the image onto f. Foreground pixels become fg, background
// pixels become bg unless bg is Transparent, in which case the frame keeps
// whatever it had.
func (img *Image) Draw(f *Frame, fg, bg Color) {
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		fy := img.Offset.Y + y
		for x, v := range row {
			switch {
			case v == Foreground:
				f.Set(img.Offset.X+x, fy, fg)
			case bg != Transparent:
				f.Set(img.Offset.X+x, fy, bg)
			}
		}
	}
}

func (img *Image) String() string {
	var sb strings.Builder
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.Pix[y*img.Stride+x] == Foreground {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
