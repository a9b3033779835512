package anim

import (
	"strings"
	"unicode/utf8"
)

// A Typewriter is a Mode that reveals the text one rune at a time.
type Typewriter struct{}

func (Typewriter) Frames(text string) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		return 1
	}
	return n
}

func (Typewriter) Render(text string, progress float64) string {
	runes := []rune(text)
	n := len(runes)
	keep := int(progress * float64(n))
	if keep > n {
		keep = n
	}
	if keep < 0 {
		keep = 0
	}
	// Pad the hidden tail so the frame keeps a stable rune count.
	return string(runes[:keep]) + strings.Repeat(" ", n-keep)
}
