package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrOffsetFormat = errors.New("clock: offset must look like [+|-]HH:MM")

// maxOffsetHours bounds the hours field. Larger offsets are accepted and
// wrap when applied.
const maxOffsetHours = 255

// Offset shifts the displayed time.
type Offset struct {
	Negative bool
	Hours    int
	Minutes  int
}

// IsZero reports whether applying o changes nothing. -0:00 is zero.
func (o Offset) IsZero() bool {
	return o.Hours == 0 && o.Minutes == 0
}

func (o Offset) String() string {
	sign := '+'
	if o.Negative {
		sign = '-'
	}
	return fmt.Sprintf("%c%02d:%02d", sign, o.Hours, o.Minutes)
}

// ParseOffset reads [+|-]H:MM. The hour field may hold any value below
// 255; minutes must be below 60.
func ParseOffset(s string) (Offset, error) {
	var o Offset
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		o.Negative = true
		s = s[1:]
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !digits(hh) || !digits(mm) || len(mm) != 2 {
		return Offset{}, fmt.Errorf("%w: %q", ErrOffsetFormat, s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h >= maxOffsetHours {
		return Offset{}, fmt.Errorf("%w: hours out of range in %q", ErrOffsetFormat, s)
	}
	m, _ := strconv.Atoi(mm)
	if m >= 60 {
		return Offset{}, fmt.Errorf("%w: minutes out of range in %q", ErrOffsetFormat, s)
	}

	o.Hours, o.Minutes = h, m
	return o, nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Set and the String method above let an Offset be used as a flag.Value.
func (o *Offset) Set(s string) error {
	v, err := ParseOffset(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
