package viewport

// DefaultBreakpoint is the terminal width, in columns, below which the
// dashboard switches to its narrow layout.
const DefaultBreakpoint = 100

// Mode is the layout class of the current viewport
type Mode int

const (
	// Desktop is the zero value so an unmeasured viewport is wide.
	Desktop Mode = iota
	Mobile
)

func (m Mode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify returns Mobile when width is strictly below breakpoint.
func Classify(width, breakpoint int) Mode {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}

// Source reports the viewport width. Width returns false when the width
// cannot be measured. Watch registers fn for later width changes and
// returns a func that unregisters it; fn must not be called before Watch
// returns.
type Source interface {
	Width() (int, bool)
	Watch(fn func(width int)) (cancel func())
}

// ModeChangedEvent is published when a subscription changes mode.
type ModeChangedEvent struct {
	Old Mode
	New Mode
}
