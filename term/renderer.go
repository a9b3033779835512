// Package term renders animation frames to an ANSI terminal. It is the
// glue between the engine's styled frames and actual escape output:
// per-rune coloring, cursor housekeeping, and multi-line placement.
package term

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/jacs121/text-animator/anim"
)

// A Renderer writes frames onto a block of terminal rows. Frames carry
// their line index; line i lands on row i*(1+spacing) of the block. The
// cursor is parked on the block's first row between frames, so render
// calls from concurrently animating lines can interleave safely.
type Renderer struct {
	mu      sync.Mutex
	out     *termenv.Output
	styler  *lipgloss.Renderer
	lines   int
	spacing int

	// widths remembers the display width of the last frame per line so
	// End can blank exactly what was drawn.
	widths []int
}

// NewRenderer creates a single-line renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return NewMultiRenderer(w, 1, 0)
}

// NewMultiRenderer creates a renderer for a block of `lines` rows with
// `spacing` blank rows between them.
func NewMultiRenderer(w io.Writer, lines, spacing int) *Renderer {
	if lines < 1 {
		lines = 1
	}
	if spacing < 0 {
		spacing = 0
	}

	r := new(Renderer)
	r.out = termenv.NewOutput(w)
	r.styler = lipgloss.NewRenderer(w)
	r.lines = lines
	r.spacing = spacing
	r.widths = make([]int, lines)
	return r
}

func (r *Renderer) rows() int {
	return r.lines + (r.lines-1)*r.spacing
}

// Begin prepares the terminal for a run: cursor visibility, screen
// clearing, and row reservation for multi-line blocks.
func (r *Renderer) Begin(flags anim.Flags) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if flags.Has(anim.HideCursor) {
		r.out.HideCursor()
	}
	if flags.Has(anim.ClearBefore) {
		r.out.ClearScreen()
	}

	if r.rows() > 1 {
		// Reserve the block, then park the cursor back on its first row.
		if _, err := r.out.WriteString(strings.Repeat("\n", r.rows())); err != nil {
			return err
		}
		r.out.CursorUp(r.rows())
	}
	return nil
}

// Render draws one frame on its line and restores the cursor anchor.
func (r *Renderer) Render(f *anim.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.Line < 0 || f.Line >= r.lines {
		return nil
	}

	styled := r.styleFrame(f)
	offset := f.Line * (1 + r.spacing)

	if r.rows() > 1 {
		r.out.SaveCursorPosition()
		if offset > 0 {
			r.out.CursorDown(offset)
		}
		defer r.out.RestoreCursorPosition()
	}
	if _, err := r.out.WriteString("\r" + styled); err != nil {
		return err
	}
	r.out.ClearLineRight()

	r.widths[f.Line] = runewidth.StringWidth(f.Text)
	return nil
}

// End finishes a run: the final frames stay on screen only under
// KeepAnimation, then the cursor leaves the block and the remaining
// flags run their course.
func (r *Renderer) End(flags anim.Flags) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !flags.Has(anim.KeepAnimation) {
		for line := 0; line < r.lines; line++ {
			if err := r.blankLine(line); err != nil {
				return err
			}
		}
	}

	if r.rows() > 1 {
		r.out.CursorDown(r.rows())
		if _, err := r.out.WriteString("\r"); err != nil {
			return err
		}
	}

	if flags.Has(anim.ClearAfter) && !flags.Has(anim.KeepAnimation) {
		r.out.ClearScreen()
	}
	if flags.Has(anim.AutoNewline) {
		if _, err := r.out.WriteString("\n"); err != nil {
			return err
		}
	}
	if flags.Has(anim.HideCursor) || flags.Has(anim.ShowCursor) {
		r.out.ShowCursor()
	}
	return nil
}

func (r *Renderer) blankLine(line int) error {
	width := r.widths[line]
	if width == 0 {
		return nil
	}

	offset := line * (1 + r.spacing)
	if r.rows() > 1 {
		r.out.SaveCursorPosition()
		if offset > 0 {
			r.out.CursorDown(offset)
		}
		defer r.out.RestoreCursorPosition()
	}
	_, err := r.out.WriteString("\r" + strings.Repeat(" ", width) + "\r")
	r.widths[line] = 0
	return err
}

func (r *Renderer) styleFrame(f *anim.Frame) string {
	base := r.styler.NewStyle()
	if f.Style.Has(anim.Bold) {
		base = base.Bold(true)
	}
	if f.Style.Has(anim.Faint) {
		base = base.Faint(true)
	}
	if f.Style.Has(anim.Italic) {
		base = base.Italic(true)
	}
	if f.Style.Has(anim.Underline) {
		base = base.Underline(true)
	}
	if f.Style.Has(anim.CrossOut) {
		base = base.Strikethrough(true)
	}

	if len(f.Colors) == 0 {
		return base.Render(f.Text)
	}

	var b strings.Builder
	for i, ch := range []rune(f.Text) {
		st := base
		if i < len(f.Colors) {
			st = st.Foreground(lipgloss.Color(f.Colors[i].Hex()))
		}
		b.WriteString(st.Render(string(ch)))
	}
	return b.String()
}
