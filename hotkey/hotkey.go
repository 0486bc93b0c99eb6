// Package hotkey registers the global pause shortcut.
package hotkey

type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
}
