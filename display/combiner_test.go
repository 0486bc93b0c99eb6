package display

import (
	"reflect"
	"testing"
)

func TestBareKeyPress(t *testing.T) {
	c := NewCombiner()
	a := c.Press("A")
	if a.Label != "A" || a.Parts != nil {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestModifierPressShowsItself(t *testing.T) {
	c := NewCombiner()
	a := c.Press("Ctrl")
	if a.Label != "Ctrl" || a.Parts != nil {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestSingleModifierCombo(t *testing.T) {
	c := NewCombiner()
	c.Press("Ctrl")
	a := c.Press("S")
	if a.Label != "Ctrl+S" {
		t.Fatalf("got %q, want Ctrl+S", a.Label)
	}
	if !reflect.DeepEqual(a.Parts, []string{"Ctrl", "S"}) {
		t.Fatalf("got parts %v", a.Parts)
	}
}

func TestComboOrderingFixed(t *testing.T) {
	// Held order must not matter: Shift before Ctrl still yields Ctrl first.
	c := NewCombiner()
	c.Press("Shift")
	c.Press("Win")
	c.Press("Ctrl")
	a := c.Press("Delete")
	if a.Label != "Ctrl+Shift+Win+Delete" {
		t.Fatalf("got %q", a.Label)
	}
}

func TestAltGrInOrdering(t *testing.T) {
	c := NewCombiner()
	c.Press("AltGr")
	c.Press("Ctrl")
	a := c.Press("E")
	if a.Label != "Ctrl+AltGr+E" {
		t.Fatalf("got %q", a.Label)
	}
}

func TestReleaseClearsModifier(t *testing.T) {
	c := NewCombiner()
	c.Press("Ctrl")
	c.Release("Ctrl")
	a := c.Press("S")
	if a.Label != "S" || a.Parts != nil {
		t.Fatalf("modifier survived release: %+v", a)
	}
}

func TestReleaseReturnsLabel(t *testing.T) {
	c := NewCombiner()
	if got := c.Release("S"); got != "S" {
		t.Fatalf("got %q", got)
	}
}

func TestRepeatedComboPresses(t *testing.T) {
	// Holding Ctrl and tapping S twice produces the same combo both times.
	c := NewCombiner()
	c.Press("Ctrl")
	first := c.Press("S")
	c.Release("S")
	second := c.Press("S")
	if first.Label != second.Label {
		t.Fatalf("combo changed between taps: %q vs %q", first.Label, second.Label)
	}
}

func TestResetDropsHeldModifiers(t *testing.T) {
	c := NewCombiner()
	c.Press("Ctrl")
	c.Reset()
	if a := c.Press("S"); a.Parts != nil {
		t.Fatalf("reset did not clear modifiers: %+v", a)
	}
}
