package anim

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTypewriterRevealIsMonotone(t *testing.T) {
	texts := []string{"hello", "héllo wörld", "世界の始まり", "x"}
	grid := []float64{0, 0.1, 0.25, 0.33, 0.5, 0.66, 0.75, 0.9, 1}

	for _, text := range texts {
		prev := -1
		for _, p := range grid {
			frame := Typewriter{}.Render(text, p)
			require.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(frame))
			revealed := utf8.RuneCountInString(strings.TrimRight(frame, " "))
			require.GreaterOrEqual(t, revealed, prev, "text %q progress %v", text, p)
			prev = revealed
		}
		require.Equal(t, text, strings.TrimRight(Typewriter{}.Render(text, 1), " "))
	}
}

func TestScrambleFullyResolvedAtOne(t *testing.T) {
	for _, text := range []string{"", "hello", "héllo wörld", "世界", "a"} {
		require.Equal(t, text, Scramble{}.Render(text, 1), "text %q", text)
	}
}

func TestScrambleIsDeterministic(t *testing.T) {
	for _, p := range []float64{0, 0.2, 0.5, 0.8} {
		a := Scramble{}.Render("determinism", p)
		b := Scramble{}.Render("determinism", p)
		require.Equal(t, a, b, "progress %v", p)
	}
}

func TestScramblePlaceholdersComeFromCharset(t *testing.T) {
	text := "hello world"
	frame := Scramble{}.Render(text, 0)
	require.Equal(t, utf8.RuneCountInString(text), utf8.RuneCountInString(frame))
	for i, r := range []rune(frame) {
		if r == []rune(text)[i] {
			continue
		}
		require.Contains(t, scrambleCharset, string(r))
	}
}

func TestBounceAssemblesFromBothEnds(t *testing.T) {
	require.Equal(t, "    ", Bounce{}.Render("abcd", 0))
	require.Equal(t, "a  d", Bounce{}.Render("abcd", 0.5))
	require.Equal(t, "abcd", Bounce{}.Render("abcd", 1))
	require.Equal(t, "世界", Bounce{}.Render("世界", 1))
	require.Equal(t, "", Bounce{}.Render("", 1))
}

func TestSlideShiftsInFromTheRight(t *testing.T) {
	require.Equal(t, "    ", Slide{}.Render("abcd", 0))
	require.Equal(t, "  ab", Slide{}.Render("abcd", 0.5))
	require.Equal(t, "abcd", Slide{}.Render("abcd", 1))
}

func TestMarqueeRotatesThroughFixedWindow(t *testing.T) {
	m := Marquee{Window: 5, Pad: 2}
	require.Equal(t, 7, m.Frames("abc"))
	require.Equal(t, "  abc", m.Render("abc", 0))
	require.Equal(t, "bc   ", m.Render("abc", 3.0/7.0))
	// A full run wraps back around to the start.
	require.Equal(t, m.Render("abc", 0), m.Render("abc", 1))
}

func TestMarqueeNegativePadDisablesPadding(t *testing.T) {
	m := Marquee{Window: 5, Pad: -1}
	require.Equal(t, 3, m.Frames("abc"))
	require.Equal(t, "abc", m.Render("abc", 0))
	// Degenerate but must not blow up.
	require.Equal(t, 1, m.Frames(""))
	require.Equal(t, "", m.Render("", 0.5))
}

func TestStaticIsASingleFrame(t *testing.T) {
	require.Equal(t, 1, Static{}.Frames("anything"))
	require.Equal(t, "anything", Static{}.Render("anything", 0))
	require.Equal(t, "anything", Static{}.Render("anything", 1))
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register("wave", func(text string, progress float64) string { return text })

	m, err := reg.Lookup("wave")
	require.NoError(t, err)
	require.Equal(t, "hi", m.Render("hi", 0.5))

	_, err = reg.Lookup("missing")
	require.ErrorIs(t, err, ErrModeNotFound)
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.Register("only-a", func(text string, progress float64) string { return text })

	_, err := b.Lookup("only-a")
	require.ErrorIs(t, err, ErrModeNotFound)
}

func TestModeFuncFrames(t *testing.T) {
	fn := ModeFunc(func(text string, progress float64) string { return text })
	require.Equal(t, 1, fn.Frames(""))
	require.Equal(t, 5, fn.Frames("hello"))
}
