package keymap

import "testing"

func TestNamedKeys(t *testing.T) {
	cases := []struct {
		rawcode uint16
		want    string
	}{
		{0x08, "Backspace"},
		{0x09, "Tab"},
		{0x0D, "Enter"},
		{0x1B, "Esc"},
		{0x20, "Space"},
		{0x25, "←"},
		{0x26, "↑"},
		{0x27, "→"},
		{0x28, "↓"},
		{0x2C, "PrtSc"},
		{0x10, "Shift"},
		{0xA0, "Shift"},
		{0xA1, "Shift"},
		{0x11, "Ctrl"},
		{0xA2, "Ctrl"},
		{0xA3, "Ctrl"},
		{0x12, "Alt"},
		{0xA4, "Alt"},
		{0xA5, "AltGr"},
		{0x5B, "Win"},
		{0x5C, "Win"},
		{0x5D, "Menu"},
		{0x14, "CapsLock"},
		{0x90, "NumLock"},
		{0x91, "ScrollLock"},
		{0x21, "PgUp"},
		{0x22, "PgDn"},
	}
	for _, c := range cases {
		got, ok := LabelFor(c.rawcode, 0)
		if !ok || got != c.want {
			t.Errorf("LabelFor(0x%02X) = %q, %v; want %q", c.rawcode, got, ok, c.want)
		}
	}
}

func TestLetterAndDigitRanges(t *testing.T) {
	for code := uint16('A'); code <= 'Z'; code++ {
		got, ok := LabelFor(code, 0)
		if !ok || got != string(rune(code)) {
			t.Errorf("LabelFor(0x%02X) = %q, %v", code, got, ok)
		}
	}
	for code := uint16('0'); code <= '9'; code++ {
		got, ok := LabelFor(code, 0)
		if !ok || got != string(rune(code)) {
			t.Errorf("LabelFor(0x%02X) = %q, %v", code, got, ok)
		}
	}
}

func TestNumpad(t *testing.T) {
	for i := uint16(0); i <= 9; i++ {
		got, ok := LabelFor(0x60+i, 0)
		if !ok || got != string(rune('0'+i)) {
			t.Errorf("numpad %d: got %q, %v", i, got, ok)
		}
	}
	ops := map[uint16]string{0x6A: "*", 0x6B: "+", 0x6D: "-", 0x6E: ".", 0x6F: "/"}
	for code, want := range ops {
		if got, ok := LabelFor(code, 0); !ok || got != want {
			t.Errorf("LabelFor(0x%02X) = %q, %v; want %q", code, got, ok, want)
		}
	}
}

func TestFunctionKeys(t *testing.T) {
	if got, _ := LabelFor(0x70, 0); got != "F1" {
		t.Errorf("F1: got %q", got)
	}
	if got, _ := LabelFor(0x7B, 0); got != "F12" {
		t.Errorf("F12: got %q", got)
	}
	if got, _ := LabelFor(0x87, 0); got != "F24" {
		t.Errorf("F24: got %q", got)
	}
}

func TestPunctuation(t *testing.T) {
	cases := map[uint16]string{
		0xBA: ";", 0xBB: "=", 0xBC: ",", 0xBD: "-", 0xBE: ".",
		0xBF: "/", 0xC0: "`", 0xDB: "[", 0xDC: `\`, 0xDD: "]", 0xDE: "'",
	}
	for code, want := range cases {
		if got, ok := LabelFor(code, 0); !ok || got != want {
			t.Errorf("LabelFor(0x%02X) = %q, %v; want %q", code, got, ok, want)
		}
	}
}

func TestKeycharFallback(t *testing.T) {
	// Unknown code with a printable char shows the char, letters uppercased.
	if got, ok := LabelFor(0xFF, 'é'); !ok || got != "É" {
		t.Errorf("got %q, %v; want É", got, ok)
	}
	if got, ok := LabelFor(0xFF, '@'); !ok || got != "@" {
		t.Errorf("got %q, %v; want @", got, ok)
	}
}

func TestUnknownCodesDropped(t *testing.T) {
	for _, code := range []uint16{0x00, 0x07, 0xFF, 0xE7} {
		if got, ok := LabelFor(code, 0); ok {
			t.Errorf("LabelFor(0x%02X) = %q; want no label", code, got)
		}
	}
	// Control characters never leak through the fallback.
	if _, ok := LabelFor(0xFF, '\x01'); ok {
		t.Error("control character produced a label")
	}
}

func TestLabelForDeterministic(t *testing.T) {
	for code := uint16(0); code < 0x100; code++ {
		a, okA := LabelFor(code, 0)
		b, okB := LabelFor(code, 0)
		if a != b || okA != okB {
			t.Fatalf("LabelFor(0x%02X) not stable: %q/%v vs %q/%v", code, a, okA, b, okB)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, m := range []string{"Ctrl", "Alt", "AltGr", "Shift", "Win"} {
		if !IsModifier(m) {
			t.Errorf("IsModifier(%q) = false", m)
		}
	}
	for _, m := range []string{"A", "Space", "Enter", "Left Click"} {
		if IsModifier(m) {
			t.Errorf("IsModifier(%q) = true", m)
		}
	}
}

func TestButtonLabels(t *testing.T) {
	cases := map[Button]string{
		ButtonLeft:   "Left Click",
		ButtonRight:  "Right Click",
		ButtonMiddle: "Middle Click",
	}
	for b, want := range cases {
		if got, ok := ButtonLabel(b); !ok || got != want {
			t.Errorf("ButtonLabel(%d) = %q, %v; want %q", b, got, ok, want)
		}
	}
	if _, ok := ButtonLabel(Button(99)); ok {
		t.Error("unknown button produced a label")
	}
}
