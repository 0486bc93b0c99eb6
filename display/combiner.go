package display

import (
	"strings"

	"github.com/StuckAtPrototype/KeyVisualizer/keymap"
)

// comboOrder fixes the order modifiers appear in a combination label.
var comboOrder = []string{"Ctrl", "Alt", "AltGr", "Shift", "Win"}

// PressAction describes what the tracker should show for a key press. Parts
// is non-nil when the press resolved into a combination.
type PressAction struct {
	Label string
	Parts []string
}

// Combiner tracks which modifier keys are currently held and folds
// non-modifier presses into combination labels like "Ctrl+Shift+S".
type Combiner struct {
	held map[string]bool
}

func NewCombiner() *Combiner {
	return &Combiner{held: make(map[string]bool)}
}

// Press records a key press and returns the resulting display action.
// Modifiers are shown as themselves; a non-modifier pressed while modifiers
// are held becomes a single combination.
func (c *Combiner) Press(label string) PressAction {
	if keymap.IsModifier(label) {
		c.held[label] = true
		return PressAction{Label: label}
	}
	if len(c.held) == 0 {
		return PressAction{Label: label}
	}

	parts := make([]string, 0, len(c.held)+1)
	for _, mod := range comboOrder {
		if c.held[mod] {
			parts = append(parts, mod)
		}
	}
	parts = append(parts, label)
	return PressAction{Label: strings.Join(parts, "+"), Parts: parts}
}

// Release records a key release, clearing the modifier if it was one, and
// returns the label the tracker should release.
func (c *Combiner) Release(label string) string {
	if keymap.IsModifier(label) {
		delete(c.held, label)
	}
	return label
}

// Reset drops all held modifiers (used when the overlay is paused or
// reconfigured, so stale modifiers cannot leak into future combos).
func (c *Combiner) Reset() {
	clear(c.held)
}
