package anim

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func TestSolidBroadcastsOneColorPerRune(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	got := Solid{Color: c}.Resolve("héllo")
	require.Len(t, got, 5)
	for _, g := range got {
		require.Equal(t, c, g)
	}
}

func TestGradientEndpointsAreExact(t *testing.T) {
	start := colorful.Color{R: 1, G: 0, B: 0}
	end := colorful.Color{R: 0, G: 0, B: 1}
	g := Gradient{Start: start, End: end}

	for _, text := range []string{"ab", "gradient", "世界の色"} {
		got := g.Resolve(text)
		require.Equal(t, start, got[0], "text %q", text)
		require.Equal(t, end, got[len(got)-1], "text %q", text)
	}
}

func TestGradientSingleRuneGetsStart(t *testing.T) {
	start := colorful.Color{R: 1, G: 0, B: 0}
	end := colorful.Color{R: 0, G: 0, B: 1}
	got := Gradient{Start: start, End: end}.Resolve("x")
	require.Len(t, got, 1)
	require.Equal(t, start, got[0])
}

func TestListShorterThanTextHoldsLastColor(t *testing.T) {
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	got := List{red, green}.Resolve("abcde")

	require.Len(t, got, 5)
	require.Equal(t, red, got[0])
	require.Equal(t, green, got[1])
	for _, g := range got[2:] {
		require.Equal(t, green, g)
	}
}

func TestListLongerThanTextIsTruncated(t *testing.T) {
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	blue := colorful.Color{B: 1}
	got := List{red, green, blue}.Resolve("ab")
	require.Equal(t, []colorful.Color{red, green}, got)
}

func TestFnResultFollowsClampRule(t *testing.T) {
	red := colorful.Color{R: 1}
	paint := Fn(func(text string) []colorful.Color {
		return []colorful.Color{red}
	})

	got := paint.Resolve("abc")
	require.Len(t, got, 3)
	for _, g := range got {
		require.Equal(t, red, g)
	}
}

func TestResolveEmptyText(t *testing.T) {
	require.Empty(t, Solid{}.Resolve(""))
	require.Empty(t, Gradient{}.Resolve(""))
	require.Empty(t, List{{R: 1}}.Resolve(""))
}
