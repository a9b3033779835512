// Package anim implements a frame-based text animation engine: single-line
// animators with live reconfiguration, a multi-line coordinator, and the
// event plumbing between them. Terminal output happens behind the Renderer
// interface; time flows through the Clock interface.
package anim

import (
	"context"
	"sync"
	"time"

	"github.com/jacs121/text-animator/util"
)

// A Renderer converts styled frames into terminal output. Begin and End
// bracket a run and carry the housekeeping the line's flags ask for.
type Renderer interface {
	Begin(flags Flags) error
	Render(f *Frame) error
	End(flags Flags) error
}

type nopRenderer struct{}

func (nopRenderer) Begin(Flags) error   { return nil }
func (nopRenderer) Render(*Frame) error { return nil }
func (nopRenderer) End(Flags) error     { return nil }

// State is the lifecycle position of an Animator.
type State int

const (
	Idle State = iota
	Running
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// An Animator owns one line's configuration and drives its frame loop.
type Animator struct {
	mu       sync.Mutex
	cfg      Config
	line     int
	progress float64
	state    State
	err      error
	cancel   chan struct{}

	renderer Renderer
	clock    Clock
	registry *Registry
	bus      *Bus
}

// An AnimatorOption injects a collaborator at construction time.
type AnimatorOption func(*Animator)

// WithRenderer sets the renderer frames are emitted through.
func WithRenderer(r Renderer) AnimatorOption {
	return func(a *Animator) {
		if r != nil {
			a.renderer = r
		}
	}
}

// WithClock sets the time source for the frame loop.
func WithClock(c Clock) AnimatorOption {
	return func(a *Animator) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithRegistry sets the registry custom modes are resolved against.
func WithRegistry(r *Registry) AnimatorOption {
	return func(a *Animator) {
		if r != nil {
			a.registry = r
		}
	}
}

// WithBus sets the event bus the animator publishes on.
func WithBus(b *Bus) AnimatorOption {
	return func(a *Animator) {
		if b != nil {
			a.bus = b
		}
	}
}

// New creates an Animator for cfg. A zero Interval falls back to
// DefaultInterval and a nil Mode to Typewriter.
func New(cfg Config, opts ...AnimatorOption) *Animator {
	a := new(Animator)
	a.cfg = cfg
	a.renderer = nopRenderer{}
	a.clock = systemClock{}
	a.registry = DefaultRegistry
	a.bus = NewBus()

	if a.cfg.Interval <= 0 {
		a.cfg.Interval = DefaultInterval
	}
	if a.cfg.Mode == nil {
		a.cfg.Mode = Typewriter{}
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configure applies the given options and returns the animator for
// chaining. An invalid value leaves the previous value in place; the
// failure is retained for Err and reported on the bus error channel,
// and the remaining options still apply. Changes take effect from the
// next computed frame, never retroactively.
func (a *Animator) Configure(opts ...Option) *Animator {
	a.mu.Lock()
	for _, opt := range opts {
		if err := opt(&a.cfg); err != nil {
			a.err = err
			a.bus.report(err)
		}
	}
	a.mu.Unlock()
	return a
}

// Config returns a snapshot of the current configuration.
func (a *Animator) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// State returns the animator's lifecycle state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Progress returns the run's progress in [0,1].
func (a *Animator) Progress() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.progress
}

// Err returns the most recent configuration or run error.
func (a *Animator) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Line returns the line index frames are published under.
func (a *Animator) Line() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.line
}

// Bus returns the event bus the animator publishes on.
func (a *Animator) Bus() *Bus {
	return a.bus
}

// Cancel requests a cooperative stop. The loop observes it at the next
// suspension point; no frame is rendered after that. Calling Cancel on a
// non-running animator does nothing.
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Running || a.cancel == nil {
		return
	}
	select {
	case <-a.cancel:
	default:
		close(a.cancel)
	}
}

// Start runs the frame loop until the animation completes, fails, or is
// cancelled. Calling Start while the loop is already running returns nil
// immediately. Progress never decreases within one run, even when a
// reconfiguration shrinks the run's duration.
func (a *Animator) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.state == Running {
		a.mu.Unlock()
		return nil
	}
	a.state = Running
	a.progress = 0
	a.err = nil
	a.cancel = make(chan struct{})
	cancel := a.cancel
	cfg := a.cfg
	line := a.line
	a.mu.Unlock()

	// A broken custom mode is a configuration error of this run, caught
	// before any output happens.
	if _, err := a.resolveMode(cfg.Mode); err != nil {
		a.settle(Cancelled, err)
		return err
	}

	if err := a.renderer.Begin(cfg.Flags); err != nil {
		rerr := &RenderError{Line: line, Wrapped: err}
		a.settle(Cancelled, rerr)
		return rerr
	}

	start := a.clock.Now()
	for {
		select {
		case <-cancel:
			a.settle(Cancelled, nil)
			return nil
		case <-ctx.Done():
			a.settle(Cancelled, ctx.Err())
			return ctx.Err()
		default:
		}

		a.mu.Lock()
		cfg = a.cfg
		a.mu.Unlock()

		mode, err := a.resolveMode(cfg.Mode)
		if err != nil {
			a.settle(Cancelled, err)
			return err
		}

		duration := time.Duration(mode.Frames(cfg.Text)) * cfg.Interval
		p := 1.0
		if duration > 0 {
			p = util.Clamp01(float64(a.clock.Now().Sub(start)) / float64(duration))
		}

		a.mu.Lock()
		if p < a.progress {
			p = a.progress
		}
		a.progress = p
		a.mu.Unlock()

		f := &Frame{
			Text:  mode.Render(cfg.Text, p),
			Style: cfg.Style,
			Line:  line,
		}
		if cfg.Paint != nil {
			f.Colors = cfg.Paint.Resolve(f.Text)
		}

		if err := a.renderer.Render(f); err != nil {
			rerr := &RenderError{Line: line, Wrapped: err}
			a.settle(Cancelled, rerr)
			return rerr
		}
		a.bus.Publish(Event{Kind: FrameRendered, Line: line, Frame: f})

		if p >= 1 {
			break
		}

		select {
		case <-a.clock.After(cfg.Interval):
		case <-cancel:
			a.settle(Cancelled, nil)
			return nil
		case <-ctx.Done():
			a.settle(Cancelled, ctx.Err())
			return ctx.Err()
		}
	}

	if err := a.renderer.End(cfg.Flags); err != nil {
		rerr := &RenderError{Line: line, Wrapped: err}
		a.settle(Cancelled, rerr)
		return rerr
	}

	a.mu.Lock()
	a.state = Completed
	a.mu.Unlock()
	a.bus.Publish(Event{Kind: LineComplete, Line: line})
	return nil
}

func (a *Animator) resolveMode(m Mode) (Mode, error) {
	if c, ok := m.(Custom); ok {
		return a.registry.Lookup(string(c))
	}
	if m == nil {
		return Typewriter{}, nil
	}
	return m, nil
}

func (a *Animator) settle(s State, err error) {
	a.mu.Lock()
	a.state = s
	if err != nil {
		a.err = err
	}
	a.mu.Unlock()
	if err != nil {
		a.bus.report(err)
	}
}

func (a *Animator) flags() Flags {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg.Flags
}

func (a *Animator) setLine(i int) {
	a.mu.Lock()
	a.line = i
	a.mu.Unlock()
}
