package screen

import "image/color"
import clr "github.com/lucasb-eyer/go-colorful"

func lighten(src color.Color, p float64) color.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}

type point struct{ x, y int }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}
