package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/StuckAtPrototype/KeyVisualizer/config"
	"github.com/StuckAtPrototype/KeyVisualizer/keymap"
)

// Style is the resolved look of a key bubble.
type Style struct {
	BG          color.NRGBA
	Text        color.NRGBA
	Border      color.NRGBA
	ShowBorder  bool
	FontSize    float32
	FontBold    bool
	Padding     float32
	MinWidth    float32
	Radius      float32
	BorderWidth float32
	Spacing     float32
}

func StyleFromConfig(cfg config.Config) Style {
	return Style{
		BG:          config.ParseHexColor(cfg.BGColor, color.NRGBA{R: 43, G: 43, B: 43, A: 255}),
		Text:        config.ParseHexColor(cfg.TextColor, color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Border:      config.ParseHexColor(cfg.BorderColor, color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		ShowBorder:  cfg.ShowBorder,
		FontSize:    float32(cfg.FontSize),
		FontBold:    cfg.FontBold,
		Padding:     float32(cfg.Padding),
		MinWidth:    float32(cfg.MinBubbleWidth),
		Radius:      float32(cfg.BorderRadius),
		BorderWidth: float32(cfg.BorderWidth),
		Spacing:     float32(cfg.BubbleSpacing),
	}
}

// SpotStyle is the resolved look of the click-spot layer.
type SpotStyle struct {
	Radius  float32
	Opacity float64
	Colors  map[string]color.NRGBA
}

func SpotStyleFromConfig(cfg config.Config) SpotStyle {
	left, _ := keymap.ButtonLabel(keymap.ButtonLeft)
	right, _ := keymap.ButtonLabel(keymap.ButtonRight)
	middle, _ := keymap.ButtonLabel(keymap.ButtonMiddle)
	return SpotStyle{
		Radius:  float32(cfg.ClickSpotRadius),
		Opacity: cfg.ClickSpotOpacity,
		Colors: map[string]color.NRGBA{
			left:   config.ParseHexColor(cfg.ClickSpotColorLeft, color.NRGBA{R: 0x64, G: 0x90, B: 0xff, A: 255}),
			right:  config.ParseHexColor(cfg.ClickSpotColorRight, color.NRGBA{R: 0xff, G: 0x78, B: 0x64, A: 255}),
			middle: config.ParseHexColor(cfg.ClickSpotColorMiddle, color.NRGBA{R: 0x8c, G: 0xc8, B: 0x8c, A: 255}),
		},
	}
}

func (s SpotStyle) colorFor(button string) color.NRGBA {
	if c, ok := s.Colors[button]; ok {
		return c
	}
	left, _ := keymap.ButtonLabel(keymap.ButtonLeft)
	return s.Colors[left]
}

// withAlpha scales a color's alpha by frac in [0,1].
func withAlpha(c color.NRGBA, frac float64) color.NRGBA {
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	c.A = uint8(float64(c.A) * frac)
	return c
}

// bubbleSize computes a bubble's dimensions from its label. Single
// characters get a near-square bubble; short labels are kept from growing
// too tall relative to their width.
func bubbleSize(label string, st Style) fyne.Size {
	text := fyne.MeasureText(label, st.FontSize, fyne.TextStyle{Bold: st.FontBold})

	borderWidth := st.BorderWidth
	if !st.ShowBorder {
		borderWidth = 0
	}

	contentW := text.Width + st.Padding*2
	contentH := text.Height + st.Padding*2
	if minH := st.FontSize * 2.2; contentH < minH {
		contentH = minH
	}

	borderSpace := borderWidth + 2
	w := contentW
	if w < st.MinWidth {
		w = st.MinWidth
	}
	w += borderSpace
	h := contentH + borderSpace

	switch n := len([]rune(label)); {
	case n == 1:
		target := w
		if h > target {
			target = h
		}
		w = target
		h = target * 0.95
	case n <= 3:
		if h > w*1.3 {
			h = w * 1.3
		}
	}
	return fyne.NewSize(w, h)
}

// stripHeight is the overlay strip height needed for the current style,
// never less than the configured minimum.
func stripHeight(cfg config.Config) float32 {
	fontSize := float32(cfg.FontSize)
	padding := float32(cfg.Padding)
	borderWidth := float32(cfg.BorderWidth)
	if !cfg.ShowBorder {
		borderWidth = 0
	}

	fontHeight := fontSize * 1.4
	bubbleH := fontHeight + padding*2 + borderWidth*2 + 4
	if minBubble := fontSize * 2.2; bubbleH < minBubble {
		bubbleH = minBubble
	}

	const verticalMargin = 10
	h := bubbleH + verticalMargin*2
	if min := float32(cfg.OverlayHeight); h < min {
		h = min
	}
	return h
}
