package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/BourgeoisBear/rasterm"
	"golang.org/x/term"

	"github.com/32bitkid/kitkat"
	"github.com/32bitkid/kitkat/screen"
)

var ErrUnsupportedTerminal = errors.New("display: terminal cannot show images")

// TerminalMode is the inline image protocol a terminal speaks.
type TerminalMode int

const (
	Unsupported TerminalMode = iota
	Sixel
	Iterm
	Kitty
)

func (m TerminalMode) String() string {
	switch m {
	case Sixel:
		return "sixel"
	case Iterm:
		return "iterm"
	case Kitty:
		return "kitty"
	default:
		return "unsupported"
	}
}

// DetectMode asks the terminal which protocols it supports, preferring
// sixel, then iTerm, then kitty.
func DetectMode() TerminalMode {
	if sixel, err := rasterm.IsSixelCapable(); err != nil {
		logger.Debug("sixel query failed", "err", err)
	} else if sixel {
		return Sixel
	}
	switch {
	case rasterm.IsItermCapable():
		return Iterm
	case rasterm.IsKittyCapable():
		return Kitty
	}
	return Unsupported
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

type TerminalOptions struct {
	Mode    TerminalMode
	Scale   int
	Palette screen.Palette

	// In is watched for q, Escape and Ctrl-C. It is switched to raw mode
	// while running when it is a terminal. Nil disables key handling.
	In *os.File
}

// Terminal redraws the frames in place in a terminal that can show inline
// images.
type Terminal struct {
	out    io.Writer
	opts   TerminalOptions
	pal    color.Palette
	ticker *ticker
}

func NewTerminal(src Source, out io.Writer, opts TerminalOptions) (*Terminal, error) {
	if opts.Mode == Unsupported {
		return nil, ErrUnsupportedTerminal
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Palette == (screen.Palette{}) {
		opts.Palette = screen.DefaultPalette
	}
	return &Terminal{
		out:    out,
		opts:   opts,
		pal:    opts.Palette.Colors(),
		ticker: newTicker(src, kitkat.TickInterval),
	}, nil
}

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	home        = "\x1b[H"
)

// Run draws a frame every tick until ctx is done or a quit key is read.
// When In is a terminal, a goroutine reading it is started and is not
// stopped by Run: it stays blocked on In after Run returns and may still
// consume one more read. Callers that keep using In should leave it nil.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if in := t.opts.In; in != nil && IsTerminal(in) {
		fd := int(in.Fd())
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("display: raw mode: %w", err)
		}
		defer term.Restore(fd, old)
		go watchKeys(in, cancel)
	}

	fmt.Fprint(t.out, hideCursor+clearScreen)
	defer fmt.Fprint(t.out, showCursor+"\r\n")

	tick := time.NewTicker(t.ticker.interval)
	defer tick.Stop()
	for {
		if err := t.draw(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
	}
}

func (t *Terminal) draw() error {
	t.ticker.step()
	img := screen.ScalePaletted(t.ticker.src.Frame(), t.opts.Scale, t.pal)
	if _, err := io.WriteString(t.out, home); err != nil {
		return fmt.Errorf("display: terminal: %w", err)
	}
	if err := writeImage(t.out, t.opts.Mode, img); err != nil {
		return fmt.Errorf("display: %v: %w", t.opts.Mode, err)
	}
	return nil
}

func writeImage(w io.Writer, mode TerminalMode, img *image.Paletted) error {
	switch mode {
	case Sixel:
		return rasterm.SixelWriteImage(w, img)
	case Iterm:
		return rasterm.ItermWriteImage(w, img)
	case Kitty:
		return rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{
			SrcWidth:  uint32(img.Bounds().Dx()),
			SrcHeight: uint32(img.Bounds().Dy()),
		})
	}
	return ErrUnsupportedTerminal
}

// watchKeys cancels on q, Escape or Ctrl-C. Raw mode turns Ctrl-C into a
// plain byte.
func watchKeys(r io.Reader, cancel context.CancelFunc) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		if err != nil {
			cancel()
			return
		}
		for _, b := range buf[:n] {
			switch b {
			case 'q', 'Q', 0x1b, 0x03:
				cancel()
				return
			}
		}
	}
}
