package anim

import (
	"strings"
	"unicode/utf8"

	"github.com/jacs121/text-animator/util"
)

// A Slide is a Mode that shifts the text in from the right edge. Every
// rune starts offset by the text length and the offset shrinks linearly
// with progress until the text sits flush at its origin.
type Slide struct{}

func (Slide) Frames(text string) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		return 1
	}
	return n
}

func (Slide) Render(text string, progress float64) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	offset := int((1 - util.Clamp01(progress)) * float64(n))
	if offset > n {
		offset = n
	}
	return strings.Repeat(" ", offset) + string(runes[:n-offset])
}
