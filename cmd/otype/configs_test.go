package main

import (
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

func TestColorDefaults(t *testing.T) {
	cfg := &MainConfig{
		Main: &cli.Command{Opts: []*cli.Opt{{Name: "color"}}},
	}
	var sb strings.Builder
	if cfg.useColor(&sb) {
		t.Errorf("color enabled for a non-terminal writer")
	}
	if opts := cfg.encOpts(&sb); len(opts) != 1 {
		t.Errorf("got %d encode options, want just the format", len(opts))
	}

	cfg.Color = true
	if !cfg.useColor(&sb) {
		t.Errorf("-color did not force color on")
	}
	if opts := cfg.encOpts(&sb); len(opts) != 2 {
		t.Errorf("got %d encode options, want format and colors", len(opts))
	}

	// explicitly -color=false wins over any tty detection
	cfg.Color = false
	v := any(false)
	cfg.Main.Opts[0].Value = &v
	if !cfg.colorSet() {
		t.Fatalf("explicit -color=false not seen as set")
	}
	if cfg.useColor(&sb) {
		t.Errorf("color enabled despite explicit -color=false")
	}
}
