// Package clock turns wall time into the values the hands are drawn from.
package clock

import "time"

// Time is the displayed time of day. Day is the day of the month.
type Time struct {
	Hour, Minute, Second int
	Day                  int
}

func FromTime(t time.Time) Time {
	h, m, s := t.Clock()
	return Time{Hour: h, Minute: m, Second: s, Day: t.Day()}
}

// Advance moves the clock forward by seconds, carrying into minutes and
// hours. The day is left alone.
func (t Time) Advance(seconds int) Time {
	total := t.Second + 60*(t.Minute+60*t.Hour) + seconds
	total = mod(total, 24*60*60)
	t.Hour = total / 3600
	t.Minute = total / 60 % 60
	t.Second = total % 60
	return t
}

// Add applies a signed offset, wrapping the hour into [0, 24) and the
// minute into [0, 60).
func (t Time) Add(o Offset) Time {
	h, m := o.Hours, o.Minutes
	if o.Negative {
		h, m = -h, -m
	}

	minute := t.Minute + m
	carry := floorDiv(minute, 60)
	t.Minute = mod(minute, 60)
	t.Hour = mod(t.Hour+h+carry, 24)
	return t
}

// Fractions returns how far round the dial each hand is, in [0, 1). The
// hour hand creeps with the minutes, the minute hand with the seconds.
func (t Time) Fractions() (hour, minute, second float64) {
	second = float64(t.Second) / 60
	minute = (float64(t.Minute) + second) / 60
	hour = (float64(t.Hour%12) + minute) / 12
	return hour, minute, second
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n < 0 {
		q--
	}
	return q
}
