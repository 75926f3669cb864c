package kitkat

import (
	"errors"

	"github.com/32bitkid/kitkat/clock"
	"github.com/32bitkid/kitkat/screen"
	"github.com/32bitkid/kitkat/sprite"
)

var ErrMoonAndSun = errors.New("kitkat: moon and sunmoon cannot both be shown")

// DefaultFrames is the number of precomputed tail and eye frames in half a
// swing.
const DefaultFrames = 16

type Options struct {
	Tail sprite.TailKind

	// Crazy makes the displayed clock run Crazy minutes per tick instead
	// of following the wall clock.
	Crazy int

	Offset clock.Offset

	Date    bool
	Moon    bool
	SunMoon bool

	// Palette defaults to screen.DefaultPalette when left zero.
	Palette screen.Palette

	// Frames defaults to DefaultFrames when left zero.
	Frames int
}

func (o Options) Validate() error {
	if o.Moon && o.SunMoon {
		return ErrMoonAndSun
	}
	if o.Crazy < 0 {
		return errors.New("kitkat: crazy must not be negative")
	}
	if o.Frames < 0 {
		return errors.New("kitkat: frames must not be negative")
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Palette == (screen.Palette{}) {
		o.Palette = screen.DefaultPalette
	}
	if o.Frames == 0 {
		o.Frames = DefaultFrames
	}
	return o
}
