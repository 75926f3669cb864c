package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/32bitkid/kitkat"
	"github.com/32bitkid/kitkat/clock"
	"github.com/32bitkid/kitkat/screen"
	"github.com/32bitkid/kitkat/sprite"
)

func parse(t *testing.T, args ...string) (*config, string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg, err := parseFlags("kitkat", args, &out)
	return cfg, out.String(), err
}

func TestDefaults(t *testing.T) {
	cfg, _, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.opts.Tail != sprite.TailTriangle || cfg.opts.Crazy != 0 || !cfg.opts.Offset.IsZero() {
		t.Fatalf("unexpected options %+v", cfg.opts)
	}
	if cfg.scale != 2 || cfg.term || cfg.png != "" || cfg.borderless || cfg.resize {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestFlags(t *testing.T) {
	cfg, _, err := parse(t,
		"--hook", "--crazy", "--crazy", "-crazy",
		"--offset", "-2:33", "--borderless", "--resize",
		"--sunmoon", "--date", "--scale", "3", "--tie", "#ff0000", "-v",
	)
	if err != nil {
		t.Fatal(err)
	}
	want := clock.Offset{Negative: true, Hours: 2, Minutes: 33}
	switch {
	case cfg.opts.Tail != sprite.TailHook:
		t.Fatal("expected the hook tail")
	case cfg.opts.Crazy != 3:
		t.Fatalf("expected crazy 3, got %d", cfg.opts.Crazy)
	case cfg.opts.Offset != want:
		t.Fatalf("expected offset %v, got %v", want, cfg.opts.Offset)
	case !cfg.borderless || !cfg.resize || !cfg.opts.SunMoon || !cfg.opts.Date || !cfg.verbose:
		t.Fatalf("boolean flags not set: %+v", cfg)
	case cfg.scale != 3:
		t.Fatalf("expected scale 3, got %d", cfg.scale)
	case cfg.opts.Palette.Accent != screen.Color(0xff0000):
		t.Fatalf("expected a red tie, got %v", cfg.opts.Palette.Accent)
	case cfg.opts.Palette.Body != screen.DefaultPalette.Body:
		t.Fatal("tie should only change the accent")
	}
}

func TestBadOffset(t *testing.T) {
	for _, s := range []string{"2", "+2:3", "255:00", "2:60", "noon"} {
		_, out, err := parse(t, "--offset", s)
		if err == nil || errors.Is(err, flag.ErrHelp) {
			t.Fatalf("%q: expected a usage error, got %v", s, err)
		}
		if !strings.Contains(out, "invalid value") || !strings.Contains(out, "-offset") {
			t.Fatalf("%q: expected a message, got %q", s, out)
		}
	}
}

func TestPermissiveOffset(t *testing.T) {
	cfg, _, err := parse(t, "--offset", "40:00")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.opts.Offset.Hours != 40 {
		t.Fatalf("unexpected offset %v", cfg.opts.Offset)
	}
}

func TestMoonAndSunMoon(t *testing.T) {
	_, out, err := parse(t, "--moon", "--sunmoon")
	if !errors.Is(err, kitkat.ErrMoonAndSun) {
		t.Fatalf("expected ErrMoonAndSun, got %v", err)
	}
	if out == "" {
		t.Fatal("expected a message")
	}
}

func TestHelp(t *testing.T) {
	cfg, out, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if len(cfg.ignored) != 0 || !strings.Contains(out, "-sunmoon") {
		t.Fatalf("unexpected help output %q", out)
	}

	cfg, _, err = parse(t, "--hook", "--help", "--moon", "--sunmoon")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("help should win over invalid combinations, got %v", err)
	}
	if strings.Join(cfg.ignored, ",") != "hook,moon,sunmoon" {
		t.Fatalf("unexpected ignored flags %v", cfg.ignored)
	}
}

func TestHelpIgnoresBadValues(t *testing.T) {
	cfg, out, err := parse(t, "--hook", "--help", "--offset", "9x")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if strings.Contains(out, "invalid value") || strings.Count(out, "Options:") != 1 {
		t.Fatalf("expected usage only, got %q", out)
	}
	if strings.Join(cfg.ignored, ",") != "hook" {
		t.Fatalf("unexpected ignored flags %v", cfg.ignored)
	}

	for _, args := range [][]string{{"-help=true"}, {"--offset", "9x", "-help"}} {
		if _, _, err := parse(t, args...); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("%v: expected ErrHelp, got %v", args, err)
		}
	}
	for _, args := range [][]string{{"-help=false", "--offset", "9x"}, {"--", "--help"}} {
		if _, _, err := parse(t, args...); err == nil || errors.Is(err, flag.ErrHelp) {
			t.Errorf("%v: expected a usage error, got %v", args, err)
		}
	}
}

func TestBadFlags(t *testing.T) {
	cases := [][]string{
		{"--nope"},
		{"--scale", "0"},
		{"--scale", "17"},
		{"--tie", "blue"},
		{"extra"},
	}
	for _, args := range cases {
		if _, _, err := parse(t, args...); err == nil || errors.Is(err, flag.ErrHelp) {
			t.Errorf("%v: expected an error, got %v", args, err)
		}
	}
}

func TestRunExitCodes(t *testing.T) {
	if code := run("kitkat", []string{"--moon", "--sunmoon"}); code != exitUsage {
		t.Fatalf("expected %d, got %d", exitUsage, code)
	}
	if code := run("kitkat", []string{"--offset", "x"}); code != exitUsage {
		t.Fatalf("expected %d, got %d", exitUsage, code)
	}
	if code := run("kitkat", []string{"--help"}); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
	if code := run("kitkat", []string{"--help", "--offset", "9x"}); code != 0 {
		t.Fatalf("expected 0, got %d", code)
	}
}
