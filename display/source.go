// Package display puts widget frames somewhere a person can see them: a
// desktop window, a graphics capable terminal or a PNG file.
package display

import (
	"time"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/32bitkid/kitkat/screen"
)

var logger = logxi.New("display")

func SetLogLevel(level int) { logger.SetLevel(level) }

// Source produces frames. *kitkat.Widget is a Source.
type Source interface {
	Tick(now time.Time)
	Frame() *screen.Frame
}

// ticker calls Tick at most once per interval.
type ticker struct {
	src      Source
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

func newTicker(src Source, interval time.Duration) *ticker {
	return &ticker{src: src, interval: interval, now: time.Now}
}

// step ticks the source if the interval has passed and reports whether
// the frame changed.
func (t *ticker) step() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.src.Tick(now)
	t.last = now
	return true
}
