package config

// PresetNames lists the quick presets in menu order.
var PresetNames = []string{"Dark", "Light", "Minimal", "Colorful"}

type preset struct {
	bg, text, border string
	showBorder       bool
}

var presets = map[string]preset{
	"Dark":     {bg: "#2b2b2b", text: "#ffffff", border: "#555555", showBorder: true},
	"Light":    {bg: "#ffffff", text: "#333333", border: "#cccccc", showBorder: true},
	"Minimal":  {bg: "#000000", text: "#ffffff", border: "#000000", showBorder: false},
	"Colorful": {bg: "#4a90d9", text: "#ffffff", border: "#2e6bb0", showBorder: true},
}

// ApplyPreset overwrites the color group with the named preset, leaving all
// other options untouched. It reports whether the name was recognized.
func ApplyPreset(c *Config, name string) bool {
	p, ok := presets[name]
	if !ok {
		return false
	}
	c.BGColor = p.bg
	c.TextColor = p.text
	c.BorderColor = p.border
	c.ShowBorder = p.showBorder
	return true
}
