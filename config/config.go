// Package config persists the overlay's options as a single JSON object
// under the user's configuration directory. Loading is forgiving: a missing
// file, unknown keys, or out-of-range values silently fall back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
)

const (
	appDirName = "KeyVisualizer"
	fileName   = "config.json"
)

// Config is the flat option map applied to the overlay. Colors are hex
// strings ("#rrggbb"); missing keys keep their defaults on load.
type Config struct {
	BGColor     string `json:"bg_color"`
	TextColor   string `json:"text_color"`
	BorderColor string `json:"border_color"`
	ShowBorder  bool   `json:"show_border"`

	FontSize int  `json:"font_size"`
	FontBold bool `json:"font_bold"`

	Padding        int `json:"padding"`
	MinBubbleWidth int `json:"min_bubble_width"`
	BorderRadius   int `json:"border_radius"`
	BorderWidth    int `json:"border_width"`

	OverlayHeight    int    `json:"overlay_height"`
	MarginBottom     int    `json:"margin_bottom"`
	MarginHorizontal int    `json:"margin_horizontal"`
	BubbleSpacing    int    `json:"bubble_spacing"`
	PositionH        string `json:"position_horizontal"`
	PositionV        string `json:"position_vertical"`
	ScreenSelection  string `json:"screen_selection"`

	FadeSpeed float64 `json:"fade_speed"`
	MaxKeys   int     `json:"max_keys"`

	Autostart   bool   `json:"autostart"`
	PauseHotkey string `json:"pause_hotkey"`

	ShowClickSpot        bool    `json:"show_click_spot"`
	ClickSpotRadius      int     `json:"click_spot_radius"`
	ClickSpotFadeMs      int     `json:"click_spot_fade_ms"`
	ClickSpotColorLeft   string  `json:"click_spot_color_left"`
	ClickSpotColorRight  string  `json:"click_spot_color_right"`
	ClickSpotColorMiddle string  `json:"click_spot_color_middle"`
	ClickSpotOpacity     float64 `json:"click_spot_opacity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BGColor:     "#2b2b2b",
		TextColor:   "#ffffff",
		BorderColor: "#555555",
		ShowBorder:  true,

		FontSize: 20,
		FontBold: true,

		Padding:        15,
		MinBubbleWidth: 55,
		BorderRadius:   25,
		BorderWidth:    3,

		OverlayHeight:    80,
		MarginBottom:     50,
		MarginHorizontal: 0,
		BubbleSpacing:    10,
		PositionH:        "center",
		PositionV:        "bottom",
		ScreenSelection:  "primary",

		FadeSpeed: 0.5,
		MaxKeys:   10,

		Autostart:   false,
		PauseHotkey: "ctrl+shift+f10",

		ShowClickSpot:        true,
		ClickSpotRadius:      45,
		ClickSpotFadeMs:      400,
		ClickSpotColorLeft:   "#6490ff",
		ClickSpotColorRight:  "#ff7864",
		ClickSpotColorMiddle: "#8cc88c",
		ClickSpotOpacity:     0.7,
	}
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the configuration at path, overlaying it onto the defaults.
// A missing file or bad JSON yields the defaults; unknown keys are ignored
// and out-of-range values clamped.
func Load(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	cfg.Sanitize()
	return cfg
}

// Save writes the whole configuration blob, creating the directory first.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Sanitize clamps out-of-range values back to usable ones. Enumerations
// fall back to their defaults rather than erroring.
func (c *Config) Sanitize() {
	def := Default()

	clampInt(&c.FontSize, 8, 72, def.FontSize)
	clampInt(&c.Padding, 4, 40, def.Padding)
	clampInt(&c.MinBubbleWidth, 20, 200, def.MinBubbleWidth)
	clampInt(&c.BorderRadius, 0, 100, def.BorderRadius)
	clampInt(&c.BorderWidth, 1, 10, def.BorderWidth)
	clampInt(&c.OverlayHeight, 40, 300, def.OverlayHeight)
	clampInt(&c.MarginBottom, 0, 500, def.MarginBottom)
	clampInt(&c.MarginHorizontal, -500, 500, def.MarginHorizontal)
	clampInt(&c.BubbleSpacing, 2, 50, def.BubbleSpacing)
	clampInt(&c.MaxKeys, 1, 20, def.MaxKeys)
	clampInt(&c.ClickSpotRadius, 10, 120, def.ClickSpotRadius)
	clampInt(&c.ClickSpotFadeMs, 100, 1500, def.ClickSpotFadeMs)

	if c.FadeSpeed < 0.1 || c.FadeSpeed > 2.0 {
		c.FadeSpeed = def.FadeSpeed
	}
	if c.ClickSpotOpacity < 0.1 || c.ClickSpotOpacity > 1.0 {
		c.ClickSpotOpacity = def.ClickSpotOpacity
	}

	switch c.PositionH {
	case "left", "center", "right":
	default:
		c.PositionH = def.PositionH
	}
	switch c.PositionV {
	case "top", "bottom":
	default:
		c.PositionV = def.PositionV
	}
	if c.ScreenSelection == "" {
		c.ScreenSelection = def.ScreenSelection
	}
	if c.PauseHotkey == "" {
		c.PauseHotkey = def.PauseHotkey
	}
}

func clampInt(v *int, min, max, def int) {
	if *v < min || *v > max {
		*v = def
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb", returning fallback on any
// malformed value.
func ParseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return fallback
		}
		r, g, b = r*17, g*17, b*17
	default:
		return fallback
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
