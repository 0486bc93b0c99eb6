// Package hook captures global keyboard and mouse input via gohook and
// translates raw events into display labels.
package hook

import (
	"sync"

	gohook "github.com/robotn/gohook"

	"github.com/StuckAtPrototype/KeyVisualizer/keymap"
)

type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	MouseUp
)

// Event is one captured input with its display label already resolved.
// X and Y are only meaningful for mouse events.
type Event struct {
	Kind  Kind
	Label string
	X     int
	Y     int
}

// Capture runs the OS-level input hook on its own goroutine and delivers
// labeled events on Events. Input the overlay cannot name is dropped at
// the source.
type Capture struct {
	events   chan Event
	stopOnce sync.Once
	done     chan struct{}
}

func NewCapture() *Capture {
	return &Capture{
		// Buffered so a slow UI frame never stalls the OS hook thread.
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
}

func (c *Capture) Events() <-chan Event {
	return c.events
}

// Start registers the handlers and launches the hook loop. The loop runs
// until Stop is called.
func (c *Capture) Start() {
	gohook.Register(gohook.KeyDown, []string{}, func(e gohook.Event) {
		if label, ok := keymap.LabelFor(e.Rawcode, e.Keychar); ok {
			c.send(Event{Kind: KeyDown, Label: label})
		}
	})
	gohook.Register(gohook.KeyUp, []string{}, func(e gohook.Event) {
		if label, ok := keymap.LabelFor(e.Rawcode, e.Keychar); ok {
			c.send(Event{Kind: KeyUp, Label: label})
		}
	})
	gohook.Register(gohook.MouseDown, []string{}, func(e gohook.Event) {
		if label, ok := buttonLabel(e.Button); ok {
			c.send(Event{Kind: MouseDown, Label: label, X: int(e.X), Y: int(e.Y)})
		}
	})
	gohook.Register(gohook.MouseUp, []string{}, func(e gohook.Event) {
		if label, ok := buttonLabel(e.Button); ok {
			c.send(Event{Kind: MouseUp, Label: label, X: int(e.X), Y: int(e.Y)})
		}
	})

	go func() {
		s := gohook.Start()
		<-gohook.Process(s)
		close(c.done)
	}()
}

// Stop ends the OS hook and waits for the loop goroutine to drain.
func (c *Capture) Stop() {
	c.stopOnce.Do(func() {
		gohook.End()
		<-c.done
	})
}

// send never blocks; when the buffer is full the event is dropped.
func (c *Capture) send(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}

func buttonLabel(b uint16) (string, bool) {
	switch b {
	case gohook.MouseMap["left"]:
		return keymap.ButtonLabel(keymap.ButtonLeft)
	case gohook.MouseMap["right"]:
		return keymap.ButtonLabel(keymap.ButtonRight)
	case gohook.MouseMap["center"]:
		return keymap.ButtonLabel(keymap.ButtonMiddle)
	}
	return "", false
}
