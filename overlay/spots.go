package overlay

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/StuckAtPrototype/KeyVisualizer/display"
)

// SpotLayer draws a fading gradient circle at each recent click. The layer
// spans the whole virtual screen; originX/Y translate global coordinates
// into window space.
type SpotLayer struct {
	widget.BaseWidget
	mu      sync.Mutex
	spots   []display.Spot
	style   SpotStyle
	originX int
	originY int
}

func NewSpotLayer(style SpotStyle) *SpotLayer {
	l := &SpotLayer{style: style}
	l.ExtendBaseWidget(l)
	return l
}

func (l *SpotLayer) SetSpots(spots []display.Spot) {
	l.mu.Lock()
	l.spots = append(l.spots[:0], spots...)
	l.mu.Unlock()
	l.Refresh()
}

func (l *SpotLayer) SetStyle(style SpotStyle) {
	l.mu.Lock()
	l.style = style
	l.mu.Unlock()
	l.Refresh()
}

func (l *SpotLayer) SetOrigin(x, y int) {
	l.mu.Lock()
	l.originX, l.originY = x, y
	l.mu.Unlock()
}

func (l *SpotLayer) CreateRenderer() fyne.WidgetRenderer {
	return &spotRenderer{layer: l}
}

type spotRenderer struct {
	layer   *SpotLayer
	objects []fyne.CanvasObject
}

func (r *spotRenderer) Layout(fyne.Size) {}

func (r *spotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (r *spotRenderer) Refresh() {
	r.layer.mu.Lock()
	spots := append([]display.Spot(nil), r.layer.spots...)
	st := r.layer.style
	ox, oy := r.layer.originX, r.layer.originY
	r.layer.mu.Unlock()

	objs := make([]fyne.CanvasObject, 0, len(spots))
	for _, s := range spots {
		center := withAlpha(st.colorFor(s.Button), s.Alpha*st.Opacity)
		grad := canvas.NewRadialGradient(center, color.NRGBA{})
		grad.Move(fyne.NewPos(
			float32(s.X-float64(ox))-st.Radius,
			float32(s.Y-float64(oy))-st.Radius,
		))
		grad.Resize(fyne.NewSize(st.Radius*2, st.Radius*2))
		objs = append(objs, grad)
	}

	r.objects = objs
	canvas.Refresh(r.layer)
}

func (r *spotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *spotRenderer) Destroy() {}
