package anim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Coordination selects how a Multi schedules its lines.
type Coordination int

const (
	// Simultaneous starts every line at once.
	Simultaneous Coordination = iota

	// Staggered starts line i after i times the stagger delay.
	Staggered

	// Sequential starts a line only after the previous one has settled.
	Sequential
)

func (c Coordination) String() string {
	switch c {
	case Simultaneous:
		return "simultaneous"
	case Staggered:
		return "staggered"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// MultiState is the aggregate lifecycle of a Multi.
type MultiState int

const (
	NotStarted MultiState = iota
	Animating
	AllCompleted
)

// DefaultStagger is the delay between line starts when none is configured.
const DefaultStagger = 100 * time.Millisecond

// A Multi coordinates a fixed, ordered set of line animators. The line
// count is fixed at construction; index i addresses the i-th line for
// the coordinator's whole lifetime.
type Multi struct {
	mu      sync.Mutex
	policy  Coordination
	stagger time.Duration
	state   MultiState
	err     error
	cancel  chan struct{}

	// built flips once NewMulti has wired the animators; collaborator
	// options are rejected from then on because the lines have already
	// captured them.
	built bool

	animators []*Animator
	renderer  Renderer
	clock     Clock
	bus       *Bus
	registry  *Registry
}

// A MultiOption adjusts coordination settings or injects collaborators.
// Options carrying an invalid value return an error and change nothing.
type MultiOption func(*Multi) error

// WithPolicy selects the coordination policy.
func WithPolicy(c Coordination) MultiOption {
	return func(m *Multi) error {
		m.policy = c
		return nil
	}
}

// WithStagger sets the delay between line starts under Staggered. A
// negative delay is rejected and the previous delay retained.
func WithStagger(d time.Duration) MultiOption {
	return func(m *Multi) error {
		if d < 0 {
			return ErrInvalidInterval
		}
		m.stagger = d
		return nil
	}
}

// WithMultiRenderer sets the renderer every line emits frames through.
// Frames carry their line index so the renderer can place them.
// Construction-time only; Configure rejects it.
func WithMultiRenderer(r Renderer) MultiOption {
	return func(m *Multi) error {
		if m.built {
			return ErrConstructionOnly
		}
		if r != nil {
			m.renderer = r
		}
		return nil
	}
}

// WithMultiClock sets the time source for line scheduling and loops.
// Construction-time only; Configure rejects it.
func WithMultiClock(c Clock) MultiOption {
	return func(m *Multi) error {
		if m.built {
			return ErrConstructionOnly
		}
		if c != nil {
			m.clock = c
		}
		return nil
	}
}

// WithMultiBus sets the shared event bus for all lines.
// Construction-time only; Configure rejects it.
func WithMultiBus(b *Bus) MultiOption {
	return func(m *Multi) error {
		if m.built {
			return ErrConstructionOnly
		}
		if b != nil {
			m.bus = b
		}
		return nil
	}
}

// WithMultiRegistry sets the mode registry for all lines.
// Construction-time only; Configure rejects it.
func WithMultiRegistry(r *Registry) MultiOption {
	return func(m *Multi) error {
		if m.built {
			return ErrConstructionOnly
		}
		if r != nil {
			m.registry = r
		}
		return nil
	}
}

// NewMulti creates a coordinator over one animator per config.
func NewMulti(cfgs []Config, opts ...MultiOption) *Multi {
	m := new(Multi)
	m.policy = Simultaneous
	m.stagger = DefaultStagger
	m.renderer = nopRenderer{}
	m.clock = systemClock{}
	m.bus = NewBus()

	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.err = err
			m.bus.report(err)
		}
	}

	m.animators = make([]*Animator, len(cfgs))
	for i, cfg := range cfgs {
		a := New(cfg,
			WithRenderer(frameOnly{m.renderer}),
			WithClock(m.clock),
			WithBus(m.bus),
			WithRegistry(m.registry))
		a.setLine(i)
		m.animators[i] = a
	}
	m.built = true
	return m
}

// Configure applies coordination options and returns the coordinator for
// chaining. Invalid values keep the previous setting, are retained for
// Err, and do not abort the chain.
func (m *Multi) Configure(opts ...MultiOption) *Multi {
	m.mu.Lock()
	for _, opt := range opts {
		if err := opt(m); err != nil {
			m.err = err
			m.bus.report(err)
		}
	}
	m.mu.Unlock()
	return m
}

// Line returns a bounds-checked handle onto line i. Other lines are
// unaffected by an out-of-range access.
func (m *Multi) Line(i int) (*Line, error) {
	if i < 0 || i >= len(m.animators) {
		return nil, fmt.Errorf("%w: index %d with %d lines", ErrIndexOutOfRange, i, len(m.animators))
	}
	return &Line{a: m.animators[i]}, nil
}

// Lines returns the number of coordinated lines.
func (m *Multi) Lines() int {
	return len(m.animators)
}

// State returns the aggregate lifecycle state.
func (m *Multi) State() MultiState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the most recent configuration error.
func (m *Multi) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Bus returns the shared event bus.
func (m *Multi) Bus() *Bus {
	return m.bus
}

// Cancel requests a cooperative stop of every line. Running lines stop
// at their next suspension point; lines the current run has not started
// yet stay unstarted.
func (m *Multi) Cancel() {
	m.mu.Lock()
	if m.cancel != nil {
		select {
		case <-m.cancel:
		default:
			close(m.cancel)
		}
	}
	m.mu.Unlock()

	for _, a := range m.animators {
		a.Cancel()
	}
}

// Start applies the coordination policy and blocks until every line has
// settled. A line that fails counts as settled, so AllComplete is
// published exactly once per run even when lines error out. Calling
// Start while a run is in flight returns nil immediately.
func (m *Multi) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.state == Animating {
		m.mu.Unlock()
		return nil
	}
	m.state = Animating
	m.cancel = make(chan struct{})
	cancel := m.cancel
	policy := m.policy
	stagger := m.stagger
	m.mu.Unlock()

	var flags Flags
	for _, a := range m.animators {
		flags |= a.flags()
	}

	if err := m.renderer.Begin(flags); err != nil {
		m.mu.Lock()
		m.state = NotStarted
		m.err = err
		m.mu.Unlock()
		m.bus.report(err)
		return err
	}

	errs := make([]error, len(m.animators))
	switch policy {
	case Sequential:
		for i, a := range m.animators {
			if cancelRequested(cancel) {
				break
			}
			errs[i] = a.Start(ctx)
			if ctx.Err() != nil {
				break
			}
		}
	case Staggered:
		m.fanOut(ctx, cancel, errs, stagger)
	default:
		m.fanOut(ctx, cancel, errs, 0)
	}

	if err := m.renderer.End(flags); err != nil {
		m.bus.report(err)
		errs = append(errs, err)
	}

	m.mu.Lock()
	m.state = AllCompleted
	m.mu.Unlock()
	m.bus.Publish(Event{Kind: AllComplete})

	return errors.Join(errs...)
}

func (m *Multi) fanOut(ctx context.Context, cancel chan struct{}, errs []error, stagger time.Duration) {
	var wg sync.WaitGroup
	for i, a := range m.animators {
		wg.Add(1)
		go func(i int, a *Animator) {
			defer wg.Done()
			if stagger > 0 && i > 0 {
				select {
				case <-m.clock.After(time.Duration(i) * stagger):
				case <-cancel:
					return
				case <-ctx.Done():
					errs[i] = ctx.Err()
					return
				}
			}
			if cancelRequested(cancel) {
				return
			}
			errs[i] = a.Start(ctx)
		}(i, a)
	}
	wg.Wait()
}

func cancelRequested(cancel chan struct{}) bool {
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

// A Line is a bounds-checked handle onto one animator of a Multi. It
// exposes the same configure-and-chain contract as the animator itself.
type Line struct {
	a *Animator
}

// Configure applies options to this line and returns the handle for
// chaining; validation failures behave as on Animator.Configure.
func (l *Line) Configure(opts ...Option) *Line {
	l.a.Configure(opts...)
	return l
}

// Config returns a snapshot of the line's configuration.
func (l *Line) Config() Config { return l.a.Config() }

// State returns the line's lifecycle state.
func (l *Line) State() State { return l.a.State() }

// Progress returns the line's run progress.
func (l *Line) Progress() float64 { return l.a.Progress() }

// Err returns the line's most recent error.
func (l *Line) Err() error { return l.a.Err() }

// Cancel requests a cooperative stop of this line only.
func (l *Line) Cancel() { l.a.Cancel() }

// frameOnly strips Begin and End from a renderer so the coordinator can
// run the flag choreography once for the whole block instead of once per
// line.
type frameOnly struct {
	r Renderer
}

func (f frameOnly) Begin(Flags) error { return nil }

func (f frameOnly) Render(fr *Frame) error { return f.r.Render(fr) }

func (f frameOnly) End(Flags) error { return nil }
