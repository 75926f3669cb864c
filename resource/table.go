package resource

import (
	"fmt"
	"image"

	"github.com/32bitkid/kitkat/screen"
)

// Table is the read-only asset table handed to the sprite generators and
// the animation driver. Nothing mutates it after NewTable returns.
type Table struct {
	Layout
	Digits [10]*screen.Image
	Layers []Layer
}

func NewTable(l Layout) (*Table, error) {
	t := &Table{
		Layout: l,
		Layers: l.Cat(),
	}
	for d := range t.Digits {
		img, err := Digit(d).Decode()
		if err != nil {
			return nil, fmt.Errorf("resource: digit %d: %w", d, err)
		}
		t.Digits[d] = img
	}
	return t, nil
}

// Layer returns the named static layer, or nil.
func (t *Table) Layer(name string) *Layer {
	for i := range t.Layers {
		if t.Layers[i].Name == name {
			return &t.Layers[i]
		}
	}
	return nil
}

// Backdrop cuts r out of every static layer. Compositing the result in
// order restores that part of the frame to its static state.
func (t *Table) Backdrop(r image.Rectangle) []Layer {
	out := make([]Layer, 0, len(t.Layers))
	for _, l := range t.Layers {
		out = append(out, Layer{
			Name:  l.Name,
			Ink:   l.Ink,
			Image: l.Crop(r.Sub(l.Offset)),
		})
	}
	return out
}

// EyesMask is the backdrop behind the eyes.
func (t *Table) EyesMask() []Layer { return t.Backdrop(t.Eyes) }

// TailMask is the backdrop behind the tail.
func (t *Table) TailMask() []Layer { return t.Backdrop(t.Tail) }
