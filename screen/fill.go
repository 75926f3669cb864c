package screen

// Fill flood fills the 4-connected background region containing (x, y)
// with foreground. Nothing happens when the seed is outside the image or
// already foreground, so filling twice is the same as filling once.
func (img *Image) Fill(x, y int) {
	if img.Get(x, y) != Background {
		return
	}

	var (
		p     point
		stack = []point{{x, y}}
		w     = img.Width()
	)

	for len(stack) > 0 {
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]
		if img.Get(p.x, p.y) != Background {
			continue
		}

		left := p.x
		for left > 0 && img.Get(left-1, p.y) == Background {
			left--
		}

		var above, below bool
		for x := left; x < w && img.Get(x, p.y) == Background; x++ {
			img.Pix[p.y*img.Stride+x] = Foreground

			// Push one seed per run of background on the neighbouring rows.
			if img.Get(x, p.y-1) == Background {
				if !above {
					stack = append(stack, point{x, p.y - 1})
					above = true
				}
			} else {
				above = false
			}
			if img.Get(x, p.y+1) == Background {
				if !below {
					stack = append(stack, point{x, p.y + 1})
					below = true
				}
			} else {
				below = false
			}
		}
	}
}
