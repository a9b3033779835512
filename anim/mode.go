package anim

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// A Mode implements a way to render a specific animation. Render must be
// pure: the same text and progress always produce the same frame.
type Mode interface {
	// Frames reports how many frames one full run takes for the given
	// text. The run's duration is Frames multiplied by the interval.
	Frames(text string) int

	// Render produces the frame for the given progress in [0,1].
	Render(text string, progress float64) string
}

// ModeFunc adapts a render function into a Mode with one frame per rune.
type ModeFunc func(text string, progress float64) string

func (f ModeFunc) Frames(text string) int {
	n := utf8.RuneCountInString(text)
	if n < 1 {
		return 1
	}
	return n
}

func (f ModeFunc) Render(text string, progress float64) string {
	return f(text, progress)
}

// Custom names a mode that is looked up in the animator's registry when
// the run starts. A failing lookup surfaces ErrModeNotFound at Start.
type Custom string

// Frames and Render only run when a Custom value escapes resolution; they
// fall back to a single static frame so a stray value stays harmless.
func (c Custom) Frames(text string) int { return 1 }

func (c Custom) Render(text string, progress float64) string { return text }

// A Registry maps custom mode names to render functions. Animators accept
// an injected Registry so tests can isolate registrations.
type Registry struct {
	mu    sync.RWMutex
	modes map[string]ModeFunc
}

// NewRegistry creates an empty mode registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.modes = make(map[string]ModeFunc)
	return r
}

// Register adds or replaces the render function for name.
func (r *Registry) Register(name string, fn ModeFunc) {
	r.mu.Lock()
	r.modes[name] = fn
	r.mu.Unlock()
}

// Lookup returns the mode registered under name.
func (r *Registry) Lookup(name string) (Mode, error) {
	r.mu.RLock()
	fn, ok := r.modes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModeNotFound, name)
	}
	return fn, nil
}

// DefaultRegistry backs animators that are not given their own registry.
var DefaultRegistry = NewRegistry()

// RegisterMode registers a custom mode on the default registry.
func RegisterMode(name string, fn ModeFunc) {
	DefaultRegistry.Register(name, fn)
}
