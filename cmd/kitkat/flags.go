package main

import (
	"flag"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/32bitkid/kitkat"
	"github.com/32bitkid/kitkat/screen"
	"github.com/32bitkid/kitkat/sprite"
)

type config struct {
	opts kitkat.Options

	borderless bool
	resize     bool
	scale      int
	term       bool
	png        string
	verbose    bool

	help    bool
	ignored []string
}

// counter is a boolean flag that counts how often it was given.
type counter int

func (c *counter) String() string   { return strconv.Itoa(int(*c)) }
func (c *counter) IsBoolFlag() bool { return true }

func (c *counter) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*c++
	}
	return nil
}

func usage(w io.Writer, name string, fs *flag.FlagSet) {
	fmt.Fprintln(w, path.Base(name))
	fmt.Fprintln(w, "usage: ", name, "[options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "kitkat is a cat clock: the tail swings, the eyes roll and the hands keep time")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "")
	fs.PrintDefaults()
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Escape or q quits. Log levels are also handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

// wantsHelp reports whether --help appears before the end of the flags.
func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name, value, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name != "help" {
			continue
		}
		if on, err := strconv.ParseBool(value); value == "" || (err == nil && on) {
			return true
		}
	}
	return false
}

// parseFlags reads the command line. Problems are reported on out. A
// flag.ErrHelp result means usage was printed and nothing should run.
func parseFlags(name string, args []string, out io.Writer) (*config, error) {
	cfg := &config{}
	var (
		hook  bool
		crazy counter
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVar(&hook, "hook", false, "draw a hooked tail instead of the triangle")
	fs.Var(&crazy, "crazy", "run the clock a minute per tick; repeat to go faster")
	fs.Var(&cfg.opts.Offset, "offset", "shift the displayed time by `[+|-]HH:MM`")
	fs.BoolVar(&cfg.borderless, "borderless", false, "open the window without decorations")
	fs.BoolVar(&cfg.resize, "resize", false, "allow the window to be resized")
	fs.BoolVar(&cfg.opts.SunMoon, "sunmoon", false, "show the sun by day and the moon phase by night")
	fs.BoolVar(&cfg.opts.Moon, "moon", false, "show the moon phase")
	fs.BoolVar(&cfg.opts.Date, "date", false, "show the day of the month")
	fs.BoolVar(&cfg.help, "help", false, "print this message and exit")
	fs.IntVar(&cfg.scale, "scale", 2, "integer zoom for the window, terminal and png output")
	fs.BoolVar(&cfg.term, "term", false, "draw in the terminal using sixel, iTerm or kitty images")
	fs.StringVar(&cfg.png, "png", "", "write one frame to `file` and exit")
	fs.Func("tie", "tie `color` as #rrggbb", func(s string) error {
		c, err := screen.ParseColor(s)
		if err != nil {
			return err
		}
		cfg.opts.Palette = screen.DefaultPalette.WithAccent(c)
		return nil
	})
	fs.BoolVar(&cfg.verbose, "v", false, "When enabled will print internal logging for this tool")

	if wantsHelp(args) {
		// Only the flag names matter now, so bad values are not reported.
		_ = fs.Parse(args)
		fs.SetOutput(out)
		fs.Usage = func() { usage(out, name, fs) }
		fs.Visit(func(f *flag.Flag) {
			if f.Name != "help" {
				cfg.ignored = append(cfg.ignored, f.Name)
			}
		})
		fs.Usage()
		return cfg, flag.ErrHelp
	}

	fs.SetOutput(out)
	fs.Usage = func() { usage(out, name, fs) }
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments %q", fs.Args())
		fmt.Fprintln(out, err)
		fs.Usage()
		return cfg, err
	}

	if hook {
		cfg.opts.Tail = sprite.TailHook
	}
	cfg.opts.Crazy = int(crazy)

	if err := cfg.opts.Validate(); err != nil {
		fmt.Fprintln(out, err)
		return cfg, err
	}
	if cfg.scale < 1 || cfg.scale > screen.MaxScale {
		err := fmt.Errorf("scale must be between 1 and %d, got %d", screen.MaxScale, cfg.scale)
		fmt.Fprintln(out, err)
		return cfg, err
	}
	return cfg, nil
}
