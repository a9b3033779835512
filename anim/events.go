package anim

import (
	"fmt"
	"sync"
)

// Kind identifies what an Event notifies about.
type Kind int

const (
	// FrameRendered fires after each frame reaches the renderer.
	FrameRendered Kind = iota

	// LineComplete fires when one line's run reaches completion.
	LineComplete

	// AllComplete fires once when every line of a coordinator has settled.
	AllComplete
)

// An Event is an immutable notification record. Frame is set for
// FrameRendered events only.
type Event struct {
	Kind  Kind
	Line  int
	Frame *Frame
}

// An Observer receives events for the kind it subscribed to.
type Observer func(Event)

// A Bus delivers events synchronously to subscribed observers, in
// subscription order. It keeps no history: only observers subscribed at
// publish time see an event.
type Bus struct {
	mu        sync.Mutex
	observers map[Kind][]*subscription
	errs      chan error
}

type subscription struct {
	fn Observer
}

// NewBus creates an event bus.
func NewBus() *Bus {
	b := new(Bus)
	b.observers = make(map[Kind][]*subscription)
	b.errs = make(chan error, 16)
	return b
}

// Subscribe registers fn for events of kind k and returns the function
// that removes the subscription again.
func (b *Bus) Subscribe(k Kind, fn Observer) func() {
	s := &subscription{fn: fn}
	b.mu.Lock()
	b.observers[k] = append(b.observers[k], s)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.observers[k]
		for i, cand := range subs {
			if cand == s {
				b.observers[k] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every observer of its kind. A panicking observer
// does not stop delivery to the ones after it; the failure goes to Errors.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := append([]*subscription(nil), b.observers[ev.Kind]...)
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(s, ev)
	}
}

func (b *Bus) deliver(s *subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.report(fmt.Errorf("anim: observer panic on %v event: %v", ev.Kind, r))
		}
	}()
	s.fn(ev)
}

// Errors exposes observer failures and animation errors that have no
// other way back to the caller.
func (b *Bus) Errors() <-chan error {
	return b.errs
}

// report never blocks a frame loop; an unread, overflowing error channel
// drops the oldest pending notification first.
func (b *Bus) report(err error) {
	for {
		select {
		case b.errs <- err:
			return
		default:
		}
		select {
		case <-b.errs:
		default:
		}
	}
}

func (k Kind) String() string {
	switch k {
	case FrameRendered:
		return "frame"
	case LineComplete:
		return "line-complete"
	case AllComplete:
		return "all-complete"
	default:
		return "unknown"
	}
}
