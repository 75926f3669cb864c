package sprite

import (
	"math"

	"github.com/32bitkid/kitkat/screen"
)

// Cycle is a precomputed half swing played forwards then backwards. The
// end frames are shown twice, once in each direction.
type Cycle struct {
	frames []*screen.Image
	i      int
	up     bool
}

// NewCycle samples gen at t = i·π/n for i in [0, n).
func NewCycle(n int, gen func(t float64) *screen.Image) *Cycle {
	c := &Cycle{frames: make([]*screen.Image, n), up: true}
	for i := range c.frames {
		c.frames[i] = gen(float64(i) * math.Pi / float64(n))
	}
	return c
}

func (c *Cycle) Len() int { return len(c.frames) }

// Frame returns the i'th precomputed frame.
func (c *Cycle) Frame(i int) *screen.Image { return c.frames[i] }

// Index is the frame Next will return.
func (c *Cycle) Index() int { return c.i }

// Next returns the current frame and steps the ping-pong index.
func (c *Cycle) Next() *screen.Image {
	img := c.frames[c.i]
	switch {
	case c.up && c.i+1 == len(c.frames):
		c.up = false
	case c.up:
		c.i++
	case c.i == 0:
		c.up = true
	default:
		c.i--
	}
	return img
}
