package display

import (
	"math"
	"testing"
	"time"
)

// fakeClock drives SpotTracker deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSpots(fade time.Duration) (*SpotTracker, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	tr := NewSpotTracker(fade)
	tr.now = clk.now
	return tr, clk
}

func TestSpotAlphaDecay(t *testing.T) {
	tr, clk := newTestSpots(400 * time.Millisecond)
	tr.Add(100, 200, "Left Click")

	clk.advance(100 * time.Millisecond)
	tr.Tick()
	spots := tr.Spots()
	if len(spots) != 1 {
		t.Fatalf("expected 1 spot, got %d", len(spots))
	}
	if math.Abs(spots[0].Alpha-0.75) > 1e-9 {
		t.Fatalf("alpha = %v, want 0.75", spots[0].Alpha)
	}
}

func TestSpotRemovedAfterFade(t *testing.T) {
	tr, clk := newTestSpots(400 * time.Millisecond)
	tr.Add(0, 0, "Right Click")

	clk.advance(400 * time.Millisecond)
	if tr.Tick() {
		t.Fatal("expected no live spots after full fade")
	}
	if len(tr.Spots()) != 0 {
		t.Fatal("dead spot still present")
	}
}

func TestSpotsFadeIndependently(t *testing.T) {
	tr, clk := newTestSpots(400 * time.Millisecond)
	tr.Add(0, 0, "Left Click")
	clk.advance(300 * time.Millisecond)
	tr.Add(10, 10, "Middle Click")
	clk.advance(200 * time.Millisecond)
	tr.Tick()

	spots := tr.Spots()
	if len(spots) != 1 {
		t.Fatalf("expected only the younger spot to survive, got %d", len(spots))
	}
	if spots[0].Button != "Middle Click" {
		t.Fatalf("wrong survivor: %+v", spots[0])
	}
	if math.Abs(spots[0].Alpha-0.5) > 1e-9 {
		t.Fatalf("alpha = %v, want 0.5", spots[0].Alpha)
	}
}

func TestSpotPositionPreserved(t *testing.T) {
	tr, _ := newTestSpots(400 * time.Millisecond)
	tr.Add(123.5, 456.5, "Left Click")
	tr.Tick()
	s := tr.Spots()[0]
	if s.X != 123.5 || s.Y != 456.5 {
		t.Fatalf("position changed: %+v", s)
	}
}

func TestSpotReset(t *testing.T) {
	tr, _ := newTestSpots(400 * time.Millisecond)
	tr.Add(0, 0, "Left Click")
	tr.Reset()
	if tr.Tick() {
		t.Fatal("spots survived reset")
	}
}
