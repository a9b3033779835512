package anim

import (
	"time"
)

// Flags control the terminal housekeeping around a run.
type Flags uint8

const (
	HideCursor Flags = 1 << iota
	ShowCursor
	ClearBefore
	ClearAfter
	AutoNewline
	KeepAnimation
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Style is a set of text attributes applied to every frame of a line.
type Style uint8

const (
	Bold Style = 1 << iota
	Faint
	Italic
	Underline
	CrossOut
)

// Has reports whether all bits of style are set.
func (s Style) Has(style Style) bool {
	return s&style == style
}

// DefaultInterval is the frame interval used when a Config leaves it zero.
const DefaultInterval = 50 * time.Millisecond

// Config holds the mutable animation settings of a single line.
// It is owned exclusively by its Animator; external mutation goes
// through Configure.
type Config struct {
	Text     string
	Mode     Mode
	Interval time.Duration
	Paint    Paint
	Style    Style
	Flags    Flags
}

// An Option applies a partial update to a Config. Options that carry an
// invalid value return an error and leave the Config untouched.
type Option func(*Config) error

// WithText replaces the line's text. Takes effect from the next frame.
func WithText(text string) Option {
	return func(c *Config) error {
		c.Text = text
		return nil
	}
}

// WithMode replaces the line's animation mode. Takes effect from the next frame.
func WithMode(m Mode) Option {
	return func(c *Config) error {
		c.Mode = m
		return nil
	}
}

// WithInterval replaces the frame interval. Non-positive durations are
// rejected and the previous interval is retained.
func WithInterval(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return ErrInvalidInterval
		}
		c.Interval = d
		return nil
	}
}

// WithPaint replaces how the line's runes are colored.
func WithPaint(p Paint) Option {
	return func(c *Config) error {
		c.Paint = p
		return nil
	}
}

// WithStyle replaces the line's text attributes.
func WithStyle(s Style) Option {
	return func(c *Config) error {
		c.Style = s
		return nil
	}
}

// WithFlags replaces the line's terminal housekeeping flags.
func WithFlags(f Flags) Option {
	return func(c *Config) error {
		c.Flags = f
		return nil
	}
}
