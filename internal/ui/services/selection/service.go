package selection

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
)

// ModeReader reports the current viewport mode.
type ModeReader interface {
	Mode() viewport.Mode
}

// EnterKey is the only key that activates a row.
const EnterKey = "enter"

// Service owns the dashboard's single area selection. Table rows and map
// tiles both read it and change it only through Set.
type Service struct {
	state Selection
	bus   events.EventBus
	mode  ModeReader
}

// NewService creates a new selection service. A nil mode reader counts as
// desktop.
func NewService(bus events.EventBus, mode ModeReader) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{bus: bus, mode: mode}
}

// Current returns the selection.
func (s *Service) Current() Selection {
	return s.state
}

// Set selects id as kind. An empty id, or the None kind, clears the
// selection. Selecting one kind always deselects the others.
func (s *Service) Set(kind Kind, id string) {
	next := Selection{Kind: kind, ID: id}
	if id == "" || kind == None {
		next = Selection{}
	}
	if next == s.state {
		return
	}

	old := s.state
	s.state = next
	s.bus.Publish(SelectionChangedEvent{Old: old, New: next})
}

func (s *Service) SelectCountry(id string)        { s.Set(Country, id) }
func (s *Service) SelectRegion(id string)         { s.Set(Region, id) }
func (s *Service) SelectLocalAuthority(id string) { s.Set(LocalAuthority, id) }

// Clear deselects everything.
func (s *Service) Clear() {
	s.Set(None, "")
}

// IsSelected reports whether id of kind is the current selection.
func (s *Service) IsSelected(kind Kind, id string) bool {
	return s.state.Kind == kind && s.state.ID == id && kind != None
}

// Interactive reports whether rows and tiles currently accept activation.
func (s *Service) Interactive() bool {
	return s.mode == nil || s.mode.Mode() == viewport.Desktop
}

// Click activates a row or tile with the pointer.
func (s *Service) Click(kind Kind, id string) {
	if !s.Interactive() {
		return
	}
	s.Set(kind, id)
}

// KeyPress activates a focused row or tile when key is enter.
func (s *Service) KeyPress(kind Kind, id string, key string) {
	if key != EnterKey || !s.Interactive() {
		return
	}
	s.Set(kind, id)
}
