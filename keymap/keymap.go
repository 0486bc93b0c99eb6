// Package keymap translates raw key identifiers into the labels shown on the
// overlay. Named keys come from a fixed table; letters, digits, numpad and
// punctuation are resolved from virtual-key-code ranges; anything left over
// falls back to the printable character reported by the hook. Codes that
// match none of these produce no label.
package keymap

import (
	"strconv"
	"unicode"
)

// Virtual-key codes (Windows numbering, which the hook reports as rawcode).
const (
	vkBack       uint16 = 0x08
	vkTab        uint16 = 0x09
	vkReturn     uint16 = 0x0D
	vkShift      uint16 = 0x10
	vkControl    uint16 = 0x11
	vkMenu       uint16 = 0x12
	vkPause      uint16 = 0x13
	vkCapital    uint16 = 0x14
	vkEscape     uint16 = 0x1B
	vkSpace      uint16 = 0x20
	vkPgUp       uint16 = 0x21
	vkPgDn       uint16 = 0x22
	vkEnd        uint16 = 0x23
	vkHome       uint16 = 0x24
	vkLeft       uint16 = 0x25
	vkUp         uint16 = 0x26
	vkRight      uint16 = 0x27
	vkDown       uint16 = 0x28
	vkSnapshot   uint16 = 0x2C
	vkInsert     uint16 = 0x2D
	vkDelete     uint16 = 0x2E
	vkLWin       uint16 = 0x5B
	vkRWin       uint16 = 0x5C
	vkApps       uint16 = 0x5D
	vkNumpad0    uint16 = 0x60
	vkNumpad9    uint16 = 0x69
	vkMultiply   uint16 = 0x6A
	vkAdd        uint16 = 0x6B
	vkSubtract   uint16 = 0x6D
	vkDecimal    uint16 = 0x6E
	vkDivide     uint16 = 0x6F
	vkF1         uint16 = 0x70
	vkF24        uint16 = 0x87
	vkNumLock    uint16 = 0x90
	vkScrollLock uint16 = 0x91
	vkLShift     uint16 = 0xA0
	vkRShift     uint16 = 0xA1
	vkLControl   uint16 = 0xA2
	vkRControl   uint16 = 0xA3
	vkLMenu      uint16 = 0xA4
	vkRMenu      uint16 = 0xA5
	vkSemicolon  uint16 = 0xBA
	vkEqual      uint16 = 0xBB
	vkComma      uint16 = 0xBC
	vkMinus      uint16 = 0xBD
	vkDot        uint16 = 0xBE
	vkSlash      uint16 = 0xBF
	vkGrave      uint16 = 0xC0
	vkLBracket   uint16 = 0xDB
	vkBackslash  uint16 = 0xDC
	vkRBracket   uint16 = 0xDD
	vkApostrophe uint16 = 0xDE
)

var namedKeys = map[uint16]string{
	vkBack:       "Backspace",
	vkTab:        "Tab",
	vkReturn:     "Enter",
	vkShift:      "Shift",
	vkControl:    "Ctrl",
	vkMenu:       "Alt",
	vkPause:      "Pause",
	vkCapital:    "CapsLock",
	vkEscape:     "Esc",
	vkSpace:      "Space",
	vkPgUp:       "PgUp",
	vkPgDn:       "PgDn",
	vkEnd:        "End",
	vkHome:       "Home",
	vkLeft:       "←",
	vkUp:         "↑",
	vkRight:      "→",
	vkDown:       "↓",
	vkSnapshot:   "PrtSc",
	vkInsert:     "Insert",
	vkDelete:     "Delete",
	vkLWin:       "Win",
	vkRWin:       "Win",
	vkApps:       "Menu",
	vkNumLock:    "NumLock",
	vkScrollLock: "ScrollLock",
	vkLShift:     "Shift",
	vkRShift:     "Shift",
	vkLControl:   "Ctrl",
	vkRControl:   "Ctrl",
	vkLMenu:      "Alt",
	vkRMenu:      "AltGr",
}

var punctuation = map[uint16]string{
	vkSemicolon:  ";",
	vkEqual:      "=",
	vkComma:      ",",
	vkMinus:      "-",
	vkDot:        ".",
	vkSlash:      "/",
	vkGrave:      "`",
	vkLBracket:   "[",
	vkBackslash:  `\`,
	vkRBracket:   "]",
	vkApostrophe: "'",
}

var numpadOps = map[uint16]string{
	vkMultiply: "*",
	vkAdd:      "+",
	vkSubtract: "-",
	vkDecimal:  ".",
	vkDivide:   "/",
}

// LabelFor returns the display label for a raw key, or ok=false when the key
// should not be shown. keychar is the printable character reported by the
// hook for the event, if any; it is only consulted when the code itself is
// unrecognized.
func LabelFor(rawcode uint16, keychar rune) (string, bool) {
	if name, ok := namedKeys[rawcode]; ok {
		return name, true
	}

	switch {
	case rawcode >= 'A' && rawcode <= 'Z':
		return string(rune(rawcode)), true
	case rawcode >= '0' && rawcode <= '9':
		return string(rune(rawcode)), true
	case rawcode >= vkNumpad0 && rawcode <= vkNumpad9:
		return string(rune('0' + rawcode - vkNumpad0)), true
	case rawcode >= vkF1 && rawcode <= vkF24:
		return "F" + strconv.Itoa(int(rawcode-vkF1)+1), true
	}
	if s, ok := numpadOps[rawcode]; ok {
		return s, true
	}
	if s, ok := punctuation[rawcode]; ok {
		return s, true
	}

	if keychar != 0 && unicode.IsPrint(keychar) && keychar != ' ' {
		if unicode.IsLetter(keychar) {
			return string(unicode.ToUpper(keychar)), true
		}
		return string(keychar), true
	}
	return "", false
}

var modifiers = map[string]bool{
	"Ctrl":  true,
	"Alt":   true,
	"AltGr": true,
	"Shift": true,
	"Win":   true,
}

// IsModifier reports whether a label is a modifier key held for combinations.
func IsModifier(label string) bool {
	return modifiers[label]
}
