package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/32bitkid/kitkat"
)

// windowTPS caps how often the window polls and presents.
const windowTPS = 60

type WindowOptions struct {
	Title      string
	Scale      int
	Borderless bool
	Resizable  bool
}

// Window shows the frames in a desktop window. It implements ebiten.Game.
type Window struct {
	opts   WindowOptions
	ticker *ticker

	img   *ebiten.Image
	dirty bool
}

func NewWindow(src Source, opts WindowOptions) *Window {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "kitkat"
	}
	return &Window{opts: opts, ticker: newTicker(src, kitkat.TickInterval)}
}

// Run blocks until the window is closed or Escape or Q is pressed.
func (w *Window) Run() error {
	frame := w.ticker.src.Frame()
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(frame.Width*w.opts.Scale, frame.Height*w.opts.Scale)
	ebiten.SetWindowDecorated(!w.opts.Borderless)
	if w.opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(windowTPS)

	logger.Debug("opening window", "title", w.opts.Title, "scale", w.opts.Scale, "borderless", w.opts.Borderless)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("display: window: %w", err)
	}
	return nil
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if w.ticker.step() {
		w.dirty = true
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	frame := w.ticker.src.Frame()
	if w.img == nil {
		w.img = ebiten.NewImage(frame.Width, frame.Height)
		w.dirty = true
	}
	if w.dirty {
		w.img.WritePixels(frame.Bytes())
		w.dirty = false
	}
	screen.DrawImage(w.img, nil)
}

// Layout keeps the logical screen at the frame size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	frame := w.ticker.src.Frame()
	return frame.Width, frame.Height
}
