// Package display holds the overlay's state model: which key and click
// entries are visible, their fade progress, and how key presses combine into
// modifier chords. It is pure in-memory logic driven by the UI tick so that
// the rendering layer stays a thin projection of it.
package display

import "time"

// TickInterval is the cadence at which Tick is expected to be called.
const TickInterval = 50 * time.Millisecond

// Entry is a snapshot of one visible key bubble.
type Entry struct {
	Label   string
	Opacity float64
	Fading  bool
}

type entryState struct {
	opacity float64
	fading  bool
}

// Tracker maintains the ordered set of visible key entries. Presses create
// or refresh entries, releases start a linear fade, and a maximum-count
// limit evicts the oldest entry regardless of its fade state.
type Tracker struct {
	maxEntries  int
	fadePerTick float64

	order    []string
	entries  map[string]*entryState
	comboFor map[string]string // part label -> combo label
}

// NewTracker builds a tracker showing at most maxEntries bubbles, fading at
// fadeSpeed opacity per second once a key is released.
func NewTracker(maxEntries int, fadeSpeed float64) *Tracker {
	t := &Tracker{
		entries:  make(map[string]*entryState),
		comboFor: make(map[string]string),
	}
	t.Configure(maxEntries, fadeSpeed)
	return t
}

// Configure applies new limits and clears all visible state, mirroring a
// configuration change taking effect immediately.
func (t *Tracker) Configure(maxEntries int, fadeSpeed float64) {
	if maxEntries < 1 {
		maxEntries = 1
	}
	t.maxEntries = maxEntries
	t.fadePerTick = fadeSpeed * TickInterval.Seconds()
	t.Reset()
}

// Reset removes every entry and combo mapping.
func (t *Tracker) Reset() {
	t.order = t.order[:0]
	clear(t.entries)
	clear(t.comboFor)
}

// Press shows label at full opacity. An already-visible entry has its fade
// cancelled; a new entry may evict the oldest one past the configured limit.
func (t *Tracker) Press(label string) {
	if e, ok := t.entries[label]; ok {
		e.opacity = 1
		e.fading = false
		return
	}

	t.entries[label] = &entryState{opacity: 1}
	t.order = append(t.order, label)

	for len(t.order) > t.maxEntries {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.entries, oldest)
		t.dropComboParts(oldest)
	}
}

// ShowCombo replaces the individual modifier bubbles of a combination with a
// single combined entry and records which labels release it.
func (t *Tracker) ShowCombo(label string, parts []string) {
	for _, part := range parts[:len(parts)-1] {
		t.remove(part)
	}
	for _, part := range parts {
		t.comboFor[part] = label
	}
	t.Press(label)
}

// Release starts the fade-out for label. If the label is part of a combo,
// the whole combo entry is released and its part mappings dropped.
func (t *Tracker) Release(label string) {
	if combo, ok := t.comboFor[label]; ok {
		t.dropComboParts(combo)
		label = combo
	}
	if e, ok := t.entries[label]; ok {
		e.fading = true
	}
}

// Tick advances fades by one step, removing entries that reached zero
// opacity. It reports whether anything changed.
func (t *Tracker) Tick() bool {
	changed := false
	for i := 0; i < len(t.order); {
		label := t.order[i]
		e := t.entries[label]
		if !e.fading {
			i++
			continue
		}
		changed = true
		e.opacity -= t.fadePerTick
		if e.opacity <= 0 {
			t.order = append(t.order[:i], t.order[i+1:]...)
			delete(t.entries, label)
			t.dropComboParts(label)
			continue
		}
		i++
	}
	return changed
}

// Len returns the number of visible entries.
func (t *Tracker) Len() int {
	return len(t.order)
}

// Entries returns a snapshot in display order, oldest first.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, label := range t.order {
		e := t.entries[label]
		out = append(out, Entry{Label: label, Opacity: e.opacity, Fading: e.fading})
	}
	return out
}

func (t *Tracker) remove(label string) {
	if _, ok := t.entries[label]; !ok {
		return
	}
	delete(t.entries, label)
	for i, l := range t.order {
		if l == label {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (t *Tracker) dropComboParts(combo string) {
	for part, c := range t.comboFor {
		if c == combo {
			delete(t.comboFor, part)
		}
	}
}
