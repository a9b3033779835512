package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"github.com/jacs121/text-animator/anim"
)

func TestRenderWritesFrameText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Begin(0))
	require.NoError(t, r.Render(&anim.Frame{Text: "hello", Line: 0}))
	require.Contains(t, buf.String(), "hello")
}

func TestRenderWithColorsKeepsRunes(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}
	frame := &anim.Frame{
		Text:   "ab",
		Colors: []colorful.Color{red, blue},
		Style:  anim.Bold,
	}
	require.NoError(t, r.Render(frame))

	out := buf.String()
	require.Contains(t, out, "a")
	require.Contains(t, out, "b")
}

func TestMultiRendererReservesRows(t *testing.T) {
	var buf bytes.Buffer
	r := NewMultiRenderer(&buf, 3, 1)

	require.NoError(t, r.Begin(0))
	// Three lines with one blank row between them need five rows.
	require.GreaterOrEqual(t, strings.Count(buf.String(), "\n"), 5)
}

func TestEndBlanksFramesUnlessKept(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render(&anim.Frame{Text: "hi", Line: 0}))
	require.NoError(t, r.End(0))
	require.Contains(t, buf.String(), "\r  \r")
}

func TestEndKeepsFinalFrameWithKeepAnimation(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render(&anim.Frame{Text: "hi", Line: 0}))
	before := buf.String()
	require.NoError(t, r.End(anim.KeepAnimation))
	require.NotContains(t, strings.TrimPrefix(buf.String(), before), "\r  \r")
}

func TestEndAppendsNewlineWithAutoNewline(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.End(anim.KeepAnimation|anim.AutoNewline))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestOutOfRangeLineIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	r := NewMultiRenderer(&buf, 2, 0)

	require.NoError(t, r.Render(&anim.Frame{Text: "ghost", Line: 7}))
	require.NotContains(t, buf.String(), "ghost")
}
