package keymap

// Button identifies a mouse button the overlay knows how to display.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

var buttonLabels = map[Button]string{
	ButtonLeft:   "Left Click",
	ButtonRight:  "Right Click",
	ButtonMiddle: "Middle Click",
}

// ButtonLabel returns the display label for a mouse button, or ok=false for
// buttons the overlay ignores.
func ButtonLabel(b Button) (string, bool) {
	s, ok := buttonLabels[b]
	return s, ok
}
