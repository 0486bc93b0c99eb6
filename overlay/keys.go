package overlay

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/StuckAtPrototype/KeyVisualizer/display"
)

// KeyStrip draws the row of key bubbles, oldest on the left.
type KeyStrip struct {
	widget.BaseWidget
	mu      sync.Mutex
	entries []display.Entry
	style   Style
}

func NewKeyStrip(style Style) *KeyStrip {
	s := &KeyStrip{style: style}
	s.ExtendBaseWidget(s)
	return s
}

// SetEntries replaces the shown bubbles. Must be called on the UI thread.
func (s *KeyStrip) SetEntries(entries []display.Entry) {
	s.mu.Lock()
	s.entries = append(s.entries[:0], entries...)
	s.mu.Unlock()
	s.Refresh()
}

func (s *KeyStrip) SetStyle(style Style) {
	s.mu.Lock()
	s.style = style
	s.mu.Unlock()
	s.Refresh()
}

func (s *KeyStrip) MinSize() fyne.Size {
	return fyne.NewSize(400, s.style.FontSize*2.2)
}

func (s *KeyStrip) CreateRenderer() fyne.WidgetRenderer {
	return &stripRenderer{strip: s}
}

type stripRenderer struct {
	strip   *KeyStrip
	objects []fyne.CanvasObject
}

func (r *stripRenderer) Layout(fyne.Size) {}

func (r *stripRenderer) MinSize() fyne.Size {
	return r.strip.MinSize()
}

// Refresh rebuilds the bubble objects from the current entries and centers
// the row inside the strip.
func (r *stripRenderer) Refresh() {
	r.strip.mu.Lock()
	entries := append([]display.Entry(nil), r.strip.entries...)
	st := r.strip.style
	r.strip.mu.Unlock()

	size := r.strip.Size()

	sizes := make([]fyne.Size, len(entries))
	var totalW float32
	for i, e := range entries {
		sizes[i] = bubbleSize(e.Label, st)
		totalW += sizes[i].Width
	}
	if len(entries) > 1 {
		totalW += st.Spacing * float32(len(entries)-1)
	}

	x := (size.Width - totalW) / 2
	objs := make([]fyne.CanvasObject, 0, len(entries)*2)
	for i, e := range entries {
		bs := sizes[i]
		y := (size.Height - bs.Height) / 2

		rect := canvas.NewRectangle(withAlpha(st.BG, e.Opacity))
		if st.ShowBorder {
			rect.StrokeColor = withAlpha(st.Border, e.Opacity)
			rect.StrokeWidth = st.BorderWidth
		}
		radius := st.Radius
		if max := min(bs.Width, bs.Height) / 2; radius > max {
			radius = max
		}
		rect.CornerRadius = radius
		rect.Move(fyne.NewPos(x, y))
		rect.Resize(bs)

		text := canvas.NewText(e.Label, withAlpha(st.Text, e.Opacity))
		text.TextSize = st.FontSize
		text.TextStyle = fyne.TextStyle{Bold: st.FontBold}
		ts := fyne.MeasureText(e.Label, st.FontSize, text.TextStyle)
		text.Move(fyne.NewPos(x+(bs.Width-ts.Width)/2, y+(bs.Height-ts.Height)/2))
		text.Resize(ts)

		objs = append(objs, rect, text)
		x += bs.Width + st.Spacing
	}

	r.objects = objs
	canvas.Refresh(r.strip)
}

func (r *stripRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *stripRenderer) Destroy() {}
