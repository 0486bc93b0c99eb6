package display

import "time"

// Spot is a snapshot of one click-position gradient circle.
type Spot struct {
	X, Y   float64
	Button string
	Alpha  float64
}

type spotState struct {
	x, y      float64
	button    string
	alpha     float64
	createdAt time.Time
}

// SpotTracker holds the click spots currently fading out. Alpha decays on
// wall-clock time rather than tick count so a stalled UI does not stretch
// the fade.
type SpotTracker struct {
	fade  time.Duration
	spots []spotState
	now   func() time.Time
}

func NewSpotTracker(fade time.Duration) *SpotTracker {
	t := &SpotTracker{now: time.Now}
	t.SetFade(fade)
	return t
}

// SetFade changes the fade duration.
func (t *SpotTracker) SetFade(fade time.Duration) {
	if fade <= 0 {
		fade = 400 * time.Millisecond
	}
	t.fade = fade
}

// Add places a new spot at the given screen coordinates.
func (t *SpotTracker) Add(x, y float64, button string) {
	t.spots = append(t.spots, spotState{
		x: x, y: y,
		button:    button,
		alpha:     1,
		createdAt: t.now(),
	})
}

// Tick recomputes every spot's alpha from its age and drops dead spots.
// It reports whether any spots remain.
func (t *SpotTracker) Tick() bool {
	now := t.now()
	live := t.spots[:0]
	for _, s := range t.spots {
		elapsed := now.Sub(s.createdAt)
		s.alpha = 1 - float64(elapsed)/float64(t.fade)
		if s.alpha > 0.001 {
			live = append(live, s)
		}
	}
	t.spots = live
	return len(t.spots) > 0
}

// Spots returns a snapshot of the live spots.
func (t *SpotTracker) Spots() []Spot {
	out := make([]Spot, 0, len(t.spots))
	for _, s := range t.spots {
		out = append(out, Spot{X: s.x, Y: s.y, Button: s.button, Alpha: s.alpha})
	}
	return out
}

// Reset drops all spots.
func (t *SpotTracker) Reset() {
	t.spots = t.spots[:0]
}
