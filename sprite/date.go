package sprite

import (
	"github.com/32bitkid/kitkat/resource"
	"github.com/32bitkid/kitkat/screen"
)

// Date draws the day of the month inside a small outlined frame. Days
// outside 1..30 leave the frame empty.
func Date(tbl *resource.Table, mday int) *screen.Image {
	img := screen.NewImage(resource.DateWidth+2, resource.DateWidth+2, tbl.Date.Min)
	img.Outline()
	if mday < 1 || mday >= 31 {
		return img
	}

	if mday >= 10 {
		img.Copy(tbl.Digits[mday/10], 1, 2)
	}
	img.Copy(tbl.Digits[mday%10], resource.DateWidth/2+1, 2)
	return img
}
