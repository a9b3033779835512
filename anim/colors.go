package anim

import (
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// A Paint specifies how the runes of a frame are colored. Resolve is
// called once per frame because text and paint may change between frames.
type Paint interface {
	// Resolve returns one color per rune of text.
	Resolve(text string) []colorful.Color
}

// Solid paints every rune with the same color.
type Solid struct {
	Color colorful.Color
}

func (s Solid) Resolve(text string) []colorful.Color {
	n := utf8.RuneCountInString(text)
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = s.Color
	}
	return out
}

// Gradient paints a linear two-stop blend across the runes. Rune 0 gets
// Start exactly and the last rune gets End exactly; a single rune gets Start.
type Gradient struct {
	Start colorful.Color
	End   colorful.Color
}

func (g Gradient) Resolve(text string) []colorful.Color {
	n := utf8.RuneCountInString(text)
	out := make([]colorful.Color, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = g.Start
		return out
	}
	for i := range out {
		out[i] = g.Start.BlendRgb(g.End, float64(i)/float64(n-1))
	}
	return out
}

// List paints runes from an explicit color sequence. A short list holds
// its last color for the remaining runes; a long list is truncated.
type List []colorful.Color

func (l List) Resolve(text string) []colorful.Color {
	return clampColors(l, utf8.RuneCountInString(text))
}

// Fn paints runes from a generator invoked with the current frame text.
// A mismatched result length follows the same clamp rule as List.
type Fn func(text string) []colorful.Color

func (f Fn) Resolve(text string) []colorful.Color {
	return clampColors(f(text), utf8.RuneCountInString(text))
}

func clampColors(src []colorful.Color, n int) []colorful.Color {
	if n == 0 || len(src) == 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	for i := range out {
		if i < len(src) {
			out[i] = src[i]
		} else {
			out[i] = src[len(src)-1]
		}
	}
	return out
}
