package sand

import (
	"testing"

	"falling-sand/internal/core"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 300 || c.Height != 200 {
		t.Fatalf("default size %dx%d, expected 300x200", c.Width, c.Height)
	}
	if c.Color != SandColor {
		t.Fatalf("default color %+v, expected %+v", c.Color, SandColor)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"preset": "200x150"})
	if c.Width != 200 || c.Height != 150 {
		t.Fatalf("preset size %dx%d, expected 200x150", c.Width, c.Height)
	}
	c = FromMap(map[string]string{"preset": "0", "w": "64", "h": "bad", "seed": "9", "tint": "-1"})
	if c.Width != 64 || c.Height != 30 {
		t.Fatalf("override size %dx%d, expected 64x30", c.Width, c.Height)
	}
	if c.Seed != 9 {
		t.Fatalf("seed = %d, expected 9", c.Seed)
	}
	if c.Tint != DefaultConfig().Tint {
		t.Fatalf("negative tint accepted: %v", c.Tint)
	}
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
}

func TestParsePreset(t *testing.T) {
	for input, want := range map[string]int{"0": 0, "2": 2, "30x30": 0, "200 x 150": 1, "300X200": 2} {
		p, err := ParsePreset(input)
		if err != nil {
			t.Fatalf("ParsePreset(%q): %v", input, err)
		}
		if p != presets[want] {
			t.Fatalf("ParsePreset(%q) = %+v, expected %+v", input, p, presets[want])
		}
	}
	for _, input := range []string{"3", "-1", "10x10", "big"} {
		if _, err := ParsePreset(input); err == nil {
			t.Fatalf("ParsePreset(%q) accepted", input)
		}
	}
}

func TestPresetIndex(t *testing.T) {
	if PresetIndex(200, 150) != 1 {
		t.Fatal("200x150 should be preset 1")
	}
	if PresetIndex(31, 30) != -1 {
		t.Fatal("31x30 is not a preset")
	}
}

func TestSetIntParameterSelectsPreset(t *testing.T) {
	w := New(30, 30)
	w.Paint(1, 1, testColor)
	if !w.SetIntParameter(PresetKey, 1) {
		t.Fatal("preset 1 rejected")
	}
	if size := w.Size(); size.W != 200 || size.H != 150 {
		t.Fatalf("size = %dx%d, expected 200x150", size.W, size.H)
	}
	if w.Count() != 0 {
		t.Fatal("preset change must reset the grid")
	}
	if w.SetIntParameter(PresetKey, 3) || w.SetIntParameter("speed", 1) {
		t.Fatal("invalid parameter accepted")
	}

	snap := w.Parameters()
	p, ok := snap.Lookup(PresetKey)
	if !ok || p.Value != "1" {
		t.Fatalf("preset parameter = %+v, ok=%v", p, ok)
	}
	label, _ := snap.Lookup("preset_label")
	if label.Value != "200 x 150" {
		t.Fatalf("preset label = %q", label.Value)
	}
	controls := w.ParameterControls()
	if len(controls) != 1 || controls[0].Key != PresetKey || controls[0].Type != core.ParamTypeInt {
		t.Fatalf("unexpected controls %+v", controls)
	}
}

func TestTinterStaysInRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tint = 0.5
	a := NewTinter(cfg)
	b := NewTinter(cfg)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			ca := a.Color(x, y)
			if ca != b.Color(x, y) {
				t.Fatalf("tint at (%d,%d) not deterministic", x, y)
			}
			for _, ch := range []float32{ca.R, ca.G, ca.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("tint at (%d,%d) out of range: %+v", x, y, ca)
				}
			}
		}
	}

	cfg.Tint = 0
	flat := NewTinter(cfg)
	flat.Advance()
	if got := flat.Color(3, 4); got != cfg.Color {
		t.Fatalf("zero tint = %+v, expected base %+v", got, cfg.Color)
	}
}
