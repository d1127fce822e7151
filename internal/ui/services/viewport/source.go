package viewport

import "sync"

// TerminalSource is a Source fed by terminal resize notifications, such as
// Bubble Tea's WindowSizeMsg. Until the first SetWidth the width is unknown.
type TerminalSource struct {
	mu        sync.Mutex
	width     int
	known     bool
	nextID    uint64
	listeners []terminalListener
}

type terminalListener struct {
	id uint64
	fn func(int)
}

// NewTerminalSource returns a source with an unknown width.
func NewTerminalSource() *TerminalSource {
	return &TerminalSource{}
}

// SetWidth records a new width and notifies watchers in registration
// order. Repeating the current width is not a change.
func (t *TerminalSource) SetWidth(width int) {
	t.mu.Lock()
	if t.known && t.width == width {
		t.mu.Unlock()
		return
	}
	t.width, t.known = width, true
	listeners := append([]terminalListener(nil), t.listeners...)
	t.mu.Unlock()

	for _, l := range listeners {
		l.fn(width)
	}
}

func (t *TerminalSource) Width() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.known
}

func (t *TerminalSource) Watch(fn func(int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	t.listeners = append(t.listeners, terminalListener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, l := range t.listeners {
				if l.id == id {
					t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Listeners returns the number of registered watchers.
func (t *TerminalSource) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}

// FixedSource reports a constant width and never changes. A zero Known
// means the width cannot be measured.
type FixedSource struct {
	Columns int
	Known   bool
}

func (f FixedSource) Width() (int, bool) {
	return f.Columns, f.Known
}

func (f FixedSource) Watch(func(int)) func() {
	return func() {}
}
