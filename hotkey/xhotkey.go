package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

type xHotkey struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
}

// New builds a hotkey for the given combo, e.g. "ctrl+shift+f10".
func New(combo string) (Hotkey, error) {
	mods, key, err := Parse(combo)
	if err != nil {
		return nil, err
	}
	return &xHotkey{
		hk:      hotkey.New(mods, key),
		keydown: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (h *xHotkey) Register() error {
	if err := h.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-h.hk.Keydown():
				select {
				case h.keydown <- struct{}{}:
				default:
				}
			case <-h.stop:
				return
			}
		}
	}()
	return nil
}

func (h *xHotkey) Unregister() {
	close(h.stop)
	h.hk.Unregister()
}

func (h *xHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

// Diagnose checks whether the configured combo can be parsed and
// registered with the OS.
func Diagnose(combo string) (string, error) {
	hk, err := New(combo)
	if err != nil {
		return "", err
	}
	if err := hk.Register(); err != nil {
		return "", fmt.Errorf("cannot register %q: %w", combo, err)
	}
	hk.Unregister()
	return fmt.Sprintf("pause hotkey %q registered", combo), nil
}
