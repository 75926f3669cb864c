package screen

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ImageFromTemplate builds an image from an ASCII drawing, one row per
// line. '_', '-', '.', '0' and ' ' are background, anything else is
// foreground. Leading and trailing blank lines and indentation are ignored.
func ImageFromTemplate(s string, offset image.Point) (*Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("screen: empty template")
	}
	var lines [][]rune
	for _, l := range strings.Split(s, "\n") {
		lines = append(lines, []rune(strings.TrimSpace(l)))
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("screen: invalid template width: row %d is %d wide, want %d", i, len(line), width)
		}
	}

	img := NewImage(width, len(lines), offset)
	for y, line := range lines {
		for x, tr := range line {
			switch tr {
			case '_', '-', '.', '0', ' ':
			default:
				img.Plot(x, y)
			}
		}
	}
	return img, nil
}

// MustTemplate is like ImageFromTemplate but panics on malformed input. It
// is meant for compiled-in templates.
func MustTemplate(s string) *Image {
	img, err := ImageFromTemplate(s, image.Point{})
	if err != nil {
		panic(err)
	}
	return img
}
