package anim

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// A Marquee is a Mode that scrolls the text through a fixed-width window.
// The text is padded with blanks on both sides and shifted circularly; one
// full run carries every rune once through the window.
type Marquee struct {
	// Window is the width of the visible window in display cells. Zero
	// or negative means the default of 30.
	Window int

	// Pad is the number of blank cells added on each side of the text.
	// Zero means the default of 10; a negative value disables padding.
	Pad int
}

func (m Marquee) window() int {
	if m.Window > 0 {
		return m.Window
	}
	return 30
}

func (m Marquee) pad() int {
	if m.Pad < 0 {
		return 0
	}
	if m.Pad == 0 {
		return 10
	}
	return m.Pad
}

func (m Marquee) padded(text string) []rune {
	blank := strings.Repeat(" ", m.pad())
	return []rune(blank + text + blank)
}

func (m Marquee) Frames(text string) int {
	if extent := len(m.padded(text)); extent > 0 {
		return extent
	}
	return 1
}

func (m Marquee) Render(text string, progress float64) string {
	padded := m.padded(text)
	extent := len(padded)
	if extent == 0 {
		return ""
	}
	shift := int(progress*float64(extent)) % extent
	rotated := make([]rune, 0, extent)
	rotated = append(rotated, padded[shift:]...)
	rotated = append(rotated, padded[:shift]...)
	return runewidth.Truncate(string(rotated), m.window(), "")
}
