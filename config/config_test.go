package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadMalformedJSONReturnsDefaults(t *testing.T) {
	path := tempConfigPath(t)
	os.WriteFile(path, []byte("{not json"), 0644)
	if cfg := Load(path); cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestRoundTrip(t *testing.T) {
	path := tempConfigPath(t)
	want := Default()
	want.BGColor = "#112233"
	want.FontSize = 32
	want.MaxKeys = 5
	want.FadeSpeed = 1.5
	want.PositionH = "left"
	want.ShowClickSpot = false

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	if got := Load(path); got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	path := tempConfigPath(t)
	blob := `{"font_size": 30, "some_future_option": true, "nested": {"x": 1}}`
	os.WriteFile(path, []byte(blob), 0644)

	cfg := Load(path)
	if cfg.FontSize != 30 {
		t.Fatalf("font_size = %d, want 30", cfg.FontSize)
	}
	want := Default()
	want.FontSize = 30
	if cfg != want {
		t.Fatalf("unknown keys disturbed other options:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestMissingKeysKeepDefaults(t *testing.T) {
	path := tempConfigPath(t)
	os.WriteFile(path, []byte(`{"max_keys": 3}`), 0644)

	cfg := Load(path)
	if cfg.MaxKeys != 3 {
		t.Fatalf("max_keys = %d, want 3", cfg.MaxKeys)
	}
	if cfg.BGColor != Default().BGColor || cfg.FadeSpeed != Default().FadeSpeed {
		t.Fatalf("missing keys lost defaults: %+v", cfg)
	}
	// Booleans defaulting to true must survive an absent key.
	if !cfg.ShowBorder || !cfg.ShowClickSpot {
		t.Fatalf("true-by-default booleans flipped: %+v", cfg)
	}
}

func TestSanitizeClampsOutOfRange(t *testing.T) {
	path := tempConfigPath(t)
	blob := `{"font_size": 500, "max_keys": 0, "fade_speed": -3, "position_horizontal": "diagonal"}`
	os.WriteFile(path, []byte(blob), 0644)

	cfg := Load(path)
	def := Default()
	if cfg.FontSize != def.FontSize {
		t.Errorf("font_size = %d, want default %d", cfg.FontSize, def.FontSize)
	}
	if cfg.MaxKeys != def.MaxKeys {
		t.Errorf("max_keys = %d, want default %d", cfg.MaxKeys, def.MaxKeys)
	}
	if cfg.FadeSpeed != def.FadeSpeed {
		t.Errorf("fade_speed = %v, want default %v", cfg.FadeSpeed, def.FadeSpeed)
	}
	if cfg.PositionH != "center" {
		t.Errorf("position_horizontal = %q, want center", cfg.PositionH)
	}
}

func TestApplyPresetTouchesOnlyColors(t *testing.T) {
	cfg := Default()
	cfg.FontSize = 36
	cfg.MaxKeys = 4

	if !ApplyPreset(&cfg, "Light") {
		t.Fatal("Light preset not recognized")
	}
	if cfg.BGColor != "#ffffff" || cfg.TextColor != "#333333" {
		t.Fatalf("preset colors not applied: %+v", cfg)
	}
	if cfg.FontSize != 36 || cfg.MaxKeys != 4 {
		t.Fatalf("preset disturbed non-color options: %+v", cfg)
	}
	if ApplyPreset(&cfg, "Nope") {
		t.Fatal("unknown preset accepted")
	}
}

func TestAllPresetNamesResolve(t *testing.T) {
	for _, name := range PresetNames {
		cfg := Default()
		if !ApplyPreset(&cfg, name) {
			t.Errorf("preset %q not recognized", name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	got := ParseHexColor("#6490ff", fallback)
	want := color.NRGBA{R: 0x64, G: 0x90, B: 0xff, A: 255}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if got := ParseHexColor("#fff", fallback); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("short form: got %+v", got)
	}

	for _, bad := range []string{"", "red", "#12345", "#zzzzzz"} {
		if got := ParseHexColor(bad, fallback); got != fallback {
			t.Errorf("ParseHexColor(%q) = %+v, want fallback", bad, got)
		}
	}
}
