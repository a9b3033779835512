package anim

import (
	"math/rand"
	"unicode/utf8"

	"github.com/jacs121/text-animator/util"
)

const scrambleCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// A Scramble is a Mode that resolves the text out of a jumble of random
// characters. Every rune owns a resolve threshold derived from its index
// and the text length; below the threshold a placeholder rune is shown,
// at or above it the true rune. Placeholders are drawn from a seeded
// source so a given (text, progress) pair always renders the same frame.
type Scramble struct {
	// Charset supplies the placeholder runes. Defaults to alphanumerics.
	Charset string
}

func (s Scramble) charset() []rune {
	if s.Charset != "" {
		return []rune(s.Charset)
	}
	return []rune(scrambleCharset)
}

func (s Scramble) Frames(text string) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		return 1
	}
	// Three churn frames per rune, as one churn reads as too abrupt.
	return 3 * n
}

// threshold maps a rune position to its resolve progress. The modulus
// keeps every threshold strictly below 0.876, so the whole text is
// resolved before progress reaches 1.
func (s Scramble) threshold(i, n int) float64 {
	return float64(util.Hash32(i, n)%897) / 1024.0
}

func (s Scramble) Render(text string, progress float64) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	progress = util.Clamp01(progress)
	step := int(progress * float64(s.Frames(text)))
	charset := s.charset()

	out := make([]rune, n)
	for i, r := range runes {
		if progress >= s.threshold(i, n) {
			out[i] = r
			continue
		}
		rng := rand.New(rand.NewSource(int64(util.Hash32(i, n, step))))
		out[i] = charset[rng.Intn(len(charset))]
	}
	return string(out)
}
