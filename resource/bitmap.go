package resource

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/kitkat/screen"
)

var ErrShortBitmap = errors.New("resource: bitmap data too short")

// Bitmap is a bit-packed monochrome mask. Each row is padded to a whole
// number of bytes and the most significant bit is the leftmost pixel.
type Bitmap struct {
	Bits          []byte
	Width, Height int
	Offset        image.Point
}

func (b Bitmap) bytesPerRow() int {
	return (b.Width + 7) >> 3
}

// Decode unpacks the bitmap into a logical image placed at b.Offset.
func (b Bitmap) Decode() (*screen.Image, error) {
	bpr := b.bytesPerRow()
	if len(b.Bits) < bpr*b.Height {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, have %d", ErrShortBitmap, b.Width, b.Height, bpr*b.Height, len(b.Bits))
	}

	img := screen.NewImage(b.Width, b.Height, b.Offset)
	bits := bitreader.NewReader(bytes.NewReader(b.Bits))
	pad := uint(bpr*8 - b.Width)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			set, err := bits.Read1()
			if err != nil {
				return nil, err
			}
			if set {
				img.Plot(x, y)
			}
		}
		if pad > 0 {
			if err := bits.Skip(pad); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

func (b Bitmap) String() string {
	result := ""
	bpr := b.bytesPerRow()
	for y := 0; y < b.Height; y++ {
		line := ""
		for x := 0; x < bpr; x++ {
			line += fmt.Sprintf("%08b", b.Bits[y*bpr+x])
		}
		result += line[0:b.Width] + "\n"
	}

	return strings.Replace(strings.Replace(result, "0", " ", -1), "1", "█", -1)
}
