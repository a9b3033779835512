package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Frame is one rendered snapshot of a line's visual state.
type Frame struct {
	// Text is the frame content produced by the line's mode.
	Text string

	// Colors holds one color per rune of Text. Nil means unpainted.
	Colors []colorful.Color

	// Style carries the text attributes to apply to the whole frame.
	Style Style

	// Line is the index of the line this frame belongs to.
	Line int
}
