package hotkey

import (
	"testing"

	"golang.design/x/hotkey"
)

func TestParseDefaultCombo(t *testing.T) {
	mods, key, err := Parse("ctrl+shift+f10")
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 2 || mods[0] != hotkey.ModCtrl || mods[1] != hotkey.ModShift {
		t.Errorf("mods = %v", mods)
	}
	if key != hotkey.KeyF10 {
		t.Errorf("key = %v, want F10", key)
	}
}

func TestParseCaseAndSpacing(t *testing.T) {
	mods, key, err := Parse(" Ctrl + P ")
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 1 || mods[0] != hotkey.ModCtrl {
		t.Errorf("mods = %v", mods)
	}
	if key != hotkey.KeyP {
		t.Errorf("key = %v, want P", key)
	}
}

func TestParseRejectsBadCombos(t *testing.T) {
	for _, combo := range []string{"", "f10", "hyper+f10", "ctrl+escape", "ctrl+"} {
		if _, _, err := Parse(combo); err == nil {
			t.Errorf("Parse(%q) accepted, want error", combo)
		}
	}
}
