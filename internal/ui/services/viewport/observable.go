// Package viewport classifies the terminal as a narrow or wide viewport and
// shares one observation of its width between every interested component.
package viewport

import "sync"

// Observable shares a single watch on a Source between any number of
// subscriptions. The watch is attached when the first subscription is
// created and detached when the last one is closed.
type Observable struct {
	mu      sync.Mutex
	deliver sync.Mutex // serialises change callbacks across resizes
	src     Source
	subs    []*Subscription
	cancel  func()
	width   int
	known   bool
}

// NewObservable returns an Observable over src.
func NewObservable(src Source) *Observable {
	return &Observable{src: src}
}

// Observe registers a consumer that classifies the shared width against
// breakpoint.
func (o *Observable) Observe(breakpoint int) *Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.subs) == 0 {
		o.width, o.known = o.src.Width()
		o.cancel = o.src.Watch(o.resize)
	}
	s := &Subscription{
		o:          o,
		breakpoint: breakpoint,
		mode:       o.modeFor(breakpoint),
	}
	o.subs = append(o.subs, s)
	return s
}

// Width returns the last width seen and whether it is known.
func (o *Observable) Width() (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width, o.known
}

// Subscribers returns the number of open subscriptions.
func (o *Observable) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

func (o *Observable) modeFor(breakpoint int) Mode {
	if !o.known {
		return Desktop
	}
	return Classify(o.width, breakpoint)
}

type change struct {
	fn   func(Mode)
	mode Mode
}

func (o *Observable) resize(width int) {
	o.deliver.Lock()
	defer o.deliver.Unlock()

	o.mu.Lock()
	if len(o.subs) == 0 {
		o.mu.Unlock()
		return
	}
	o.width, o.known = width, true

	var changes []change
	for _, s := range o.subs {
		mode := Classify(width, s.breakpoint)
		if mode == s.mode {
			continue
		}
		s.mode = mode
		if s.onChange != nil {
			changes = append(changes, change{fn: s.onChange, mode: mode})
		}
	}
	o.mu.Unlock()

	for _, c := range changes {
		c.fn(c.mode)
	}
}

func (o *Observable) remove(s *Subscription) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for i, sub := range o.subs {
		if sub == s {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			break
		}
	}
	if len(o.subs) > 0 {
		return nil
	}
	cancel = o.cancel
	o.cancel = nil
	o.width, o.known = 0, false
	return cancel
}

// Subscription is one consumer's view of the shared viewport.
type Subscription struct {
	o          *Observable
	breakpoint int
	mode       Mode
	onChange   func(Mode)
	closed     bool
}

// Mode returns the current classification. After Close it keeps returning
// the last value.
func (s *Subscription) Mode() Mode {
	s.o.mu.Lock()
	defer s.o.mu.Unlock()
	return s.mode
}

// Breakpoint returns the width this subscription classifies against.
func (s *Subscription) Breakpoint() int {
	return s.breakpoint
}

// OnChange sets fn to be called with the new mode each time it changes.
// Calls happen on the goroutine reporting the resize, one resize at a time.
func (s *Subscription) OnChange(fn func(Mode)) {
	s.o.mu.Lock()
	defer s.o.mu.Unlock()
	s.onChange = fn
}

// Close stops updates for this subscription. Closing the last open
// subscription detaches the watch on the source before returning. Close
// may be called more than once.
func (s *Subscription) Close() {
	if cancel := s.o.remove(s); cancel != nil {
		cancel()
	}
}
