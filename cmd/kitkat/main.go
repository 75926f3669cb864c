package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-stack/stack"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/32bitkid/kitkat"
	"github.com/32bitkid/kitkat/display"
	"github.com/32bitkid/kitkat/resource"
)

var logger = logxi.New("kitkat-cli")

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

func run(name string, args []string) int {
	cfg, err := parseFlags(name, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		if len(cfg.ignored) > 0 {
			logger.Warn("help requested, ignoring other flags", "flags", cfg.ignored)
		}
		return 0
	}
	if err != nil {
		return exitUsage
	}

	if cfg.verbose {
		logger.SetLevel(logxi.LevelDebug)
		kitkat.SetLogLevel(logxi.LevelDebug)
		display.SetLogLevel(logxi.LevelDebug)
	}

	if err := start(cfg); err != nil {
		logger.Error("kitkat failed", "err", err, "stack", stack.Trace().TrimRuntime())
		return exitFailure
	}
	return 0
}

func start(cfg *config) error {
	tbl, err := resource.NewTable(resource.DefaultLayout())
	if err != nil {
		return err
	}
	w, err := kitkat.New(tbl, cfg.opts)
	if err != nil {
		return err
	}

	switch {
	case cfg.png != "":
		return display.SnapshotFile(cfg.png, w, time.Now(), cfg.scale)

	case cfg.term:
		mode := display.DetectMode()
		logger.Debug("terminal", "mode", mode)
		t, err := display.NewTerminal(w, os.Stdout, display.TerminalOptions{
			Mode:    mode,
			Scale:   cfg.scale,
			Palette: cfg.opts.Palette,
			In:      os.Stdin,
		})
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return t.Run(ctx)

	default:
		return display.NewWindow(w, display.WindowOptions{
			Title:      "kitkat",
			Scale:      cfg.scale,
			Borderless: cfg.borderless,
			Resizable:  cfg.resize,
		}).Run()
	}
}
