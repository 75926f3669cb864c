// Package kitkat drives the animated cat clock.
//
// A Widget owns the master frame. Every tick it restores the regions that
// move from the static cat layers, then redraws the swinging tail, the
// rolling eyes and the hands, and stamps the optional date and moon or sun
// badges on top. Everything is drawn by one goroutine; a Widget is not safe
// for concurrent use.
package kitkat

import (
	"image"
	"time"

	"github.com/32bitkid/kitkat/clock"
	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
	"github.com/32bitkid/kitkat/sprite"
)

// TickInterval is the logical update rate.
const TickInterval = 100 * time.Millisecond

// Sun hours for the sunmoon badge, [sunrise, sunset).
const (
	sunrise = 6
	sunset  = 18
)

type Widget struct {
	tbl  *resource.Table
	opts Options
	pal  screen.Palette

	frame *screen.Frame
	drawn bool

	tails *sprite.Cycle
	eyes  *sprite.Cycle
	hands *screen.Image

	tailMask []resource.Layer
	eyesMask []resource.Layer
	faceMask []resource.Layer

	now   clock.Time
	ticks int

	day     int
	date    *screen.Image
	phase   sprite.Phase
	moon    *screen.Image
	sun     *screen.Image
	sunBack *screen.Image
	corners *screen.Image
}

// New precomputes the animation cycles and the badges. The table is only
// read.
func New(tbl *resource.Table, opts Options) (*Widget, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	l := tbl.Layout
	tail := sprite.TailGenerator(opts.Tail)
	w := &Widget{
		tbl:   tbl,
		opts:  opts,
		pal:   opts.Palette,
		frame: screen.NewFrame(l.Width, l.Height, opts.Palette.Background),
		tails: sprite.NewCycle(opts.Frames, func(t float64) *screen.Image { return tail(l, t) }),
		eyes:  sprite.NewCycle(opts.Frames, func(t float64) *screen.Image { return sprite.Eyes(l, t) }),
		hands: screen.NewImage(l.Face.Dx(), l.Face.Dy(), l.Face.Min),

		tailMask: tbl.TailMask(),
		eyesMask: tbl.EyesMask(),
		faceMask: tbl.Backdrop(l.Face),

		day:     -1,
		sun:     sprite.Sun(l),
		sunBack: sprite.SunBackground(l),
		corners: sprite.CornerFill(l),
	}

	logger.Debug("widget ready", "tail", opts.Tail, "frames", opts.Frames, "crazy", opts.Crazy, "offset", opts.Offset)
	return w, nil
}

func (w *Widget) Size() (width, height int) {
	return w.frame.Width, w.frame.Height
}

// Frame is the master frame as of the last tick. It is reused between
// ticks.
func (w *Widget) Frame() *screen.Frame {
	return w.frame
}

// Time is the time the hands showed at the last tick.
func (w *Widget) Time() clock.Time {
	return w.now
}

// Tick advances the animation one step and redraws the frame for now.
func (w *Widget) Tick(now time.Time) {
	if !w.drawn {
		w.restore(w.tbl.Layers, w.tbl.Bounds())
		w.drawn = true
	}
	w.now = w.displayed(now)
	w.ticks++

	w.restore(w.tailMask, w.tbl.Tail)
	w.tails.Next().Draw(w.frame, w.pal.Body, screen.Transparent)

	w.restore(w.eyesMask, w.tbl.Eyes)
	w.eyes.Next().Draw(w.frame, w.pal.Body, screen.Transparent)

	w.restore(w.faceMask, w.tbl.Face)
	w.drawHands()

	w.refreshDay(now)
	if w.opts.Date {
		w.date.Draw(w.frame, w.pal.Body, w.pal.Face)
	}
	w.drawBadge()
}

// displayed is the time the hands should show.
func (w *Widget) displayed(now time.Time) clock.Time {
	t := clock.FromTime(now).Add(w.opts.Offset)
	if w.opts.Crazy == 0 || w.ticks == 0 {
		return t
	}
	next := w.now.Advance(60 * w.opts.Crazy)
	next.Day = t.Day
	return next
}

// restore repaints r from the static layers.
func (w *Widget) restore(layers []resource.Layer, r image.Rectangle) {
	w.frame.FillRect(r, w.pal.Background)
	for _, l := range layers {
		l.Draw(w.frame, w.pal.Ink(l.Ink), screen.Transparent)
	}
}

func (w *Widget) drawHands() {
	hour, minute, second := w.now.Fractions()
	w.hands.Clear()
	sprite.HourHand.Render(w.hands, hour)
	sprite.MinuteHand.Render(w.hands, minute)
	sprite.SecondHand.Render(w.hands, second)
	w.hands.Draw(w.frame, w.pal.Body, screen.Transparent)
}

// refreshDay rebuilds the date stamp and the moon when the day changes.
func (w *Widget) refreshDay(now time.Time) {
	if w.now.Day == w.day {
		return
	}
	w.day = w.now.Day
	w.date = sprite.Date(w.tbl, w.day)
	w.phase = sprite.PhaseOf(sprite.Position(now))
	w.moon = sprite.Moon(w.tbl.Layout, w.phase)
	logger.Debug("new day", "day", w.day, "phase", w.phase)
}

// Daytime reports whether the sunmoon badge shows the sun.
func Daytime(t clock.Time) bool {
	return t.Hour >= sunrise && t.Hour < sunset
}

func (w *Widget) drawBadge() {
	switch {
	case w.opts.SunMoon && Daytime(w.now):
		w.sunBack.Draw(w.frame, w.pal.Face, w.pal.Shade)
		w.sun.Draw(w.frame, w.pal.Accent, screen.Transparent)
	case w.opts.SunMoon, w.opts.Moon:
		w.moon.Draw(w.frame, w.pal.Face, w.pal.Shade)
	default:
		return
	}
	w.corners.Draw(w.frame, w.pal.Body, screen.Transparent)
}

// Phase is the moon phase for the current day.
func (w *Widget) Phase() sprite.Phase {
	return w.phase
}
