package app

import (
	"flag"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Sim != "sand" || cfg.Preset != 2 || cfg.TPS != 60 || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["preset"] != "2" || m["seed"] != "42" {
		t.Fatalf("unexpected sim config: %v", m)
	}
	if _, ok := m["w"]; ok {
		t.Fatalf("w must be omitted without explicit dimensions: %v", m)
	}
}

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("sand", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-preset", "0", "-w", "64", "-h", "48", "-tint", "0", "-poll-hz", "10", "-hud-width", "0"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Preset != 0 || cfg.W != 64 || cfg.H != 48 || cfg.PollHz != 10 || cfg.HUDWidth != 0 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	m := cfg.SimConfig()
	if m["w"] != "64" || m["h"] != "48" || m["tint"] != "0" {
		t.Fatalf("unexpected sim config: %v", m)
	}
}

func TestWindowSize(t *testing.T) {
	cfg := NewConfig()
	if w, h := cfg.WindowSize(300, 200); w != 900 || h != 600 {
		t.Fatalf("300x200 at scale 3: got %dx%d", w, h)
	}
	if w, h := cfg.WindowSize(30, 30); w != MinWindowWidth || h != MinWindowHeight {
		t.Fatalf("small grid should use minimum window: got %dx%d", w, h)
	}
	cfg.Scale = 0
	if w, h := cfg.WindowSize(1000, 700); w != 1000 || h != 700 {
		t.Fatalf("scale 0 should behave as 1: got %dx%d", w, h)
	}
}
