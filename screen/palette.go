package screen

import (
	"fmt"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24 bit display color, 0x00RRGGBB.
type Color uint32

// Transparent is not a color. Passed as a background to Draw it leaves the
// frame untouched.
const Transparent Color = 0xFF000000

func (c Color) RGBA() (r, g, b, a uint32) {
	if c == Transparent {
		return 0, 0, 0, 0
	}
	rb, gb, bb := (c>>16)&0xFF, (c>>8)&0xFF, (c>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func (c Color) String() string {
	if c == Transparent {
		return "transparent"
	}
	return fmt.Sprintf("#%06x", uint32(c))
}

// ColorOf converts any opaque color into a Color.
func ColorOf(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color((r>>8)<<16 | (g>>8)<<8 | b>>8)
}

// ParseColor reads a "#rrggbb" hex color.
func ParseColor(s string) (Color, error) {
	c, err := clr.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("screen: invalid color %q: %w", s, err)
	}
	return ColorOf(c.Clamped()), nil
}

// Palette holds the display colors substituted for sentinels on composite.
type Palette struct {
	Background Color
	Body       Color
	Face       Color
	Accent     Color
	Shade      Color
}

var DefaultPalette = Palette{
	Background: 0xFFFFFF,
	Body:       0x000000,
	Face:       0xFFFFFF,
	Accent:     0x007FFF,
	Shade:      ColorOf(lighten(Color(0x007FFF), 0.35)),
}

// WithAccent returns a copy of the palette using accent for the tie and
// a lightened accent as the shade.
func (p Palette) WithAccent(accent Color) Palette {
	p.Accent = accent
	p.Shade = ColorOf(lighten(accent, 0.35))
	return p
}

// Colors lists the palette in a stable order, for paletted output.
func (p Palette) Colors() color.Palette {
	return color.Palette{p.Background, p.Body, p.Face, p.Accent, p.Shade}
}

// Ink names a palette entry so static data can say how it is painted
// without knowing the colors.
type Ink int

const (
	InkBackground Ink = iota
	InkBody
	InkFace
	InkAccent
	InkShade
)

func (p Palette) Ink(i Ink) Color {
	switch i {
	case InkBody:
		return p.Body
	case InkFace:
		return p.Face
	case InkAccent:
		return p.Accent
	case InkShade:
		return p.Shade
	default:
		return p.Background
	}
}
