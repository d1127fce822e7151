package sorting

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
)

// Service handles sorting logic
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new sorting service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			CurrentMode: logic.SortByName, // Default
		},
		bus: bus,
	}
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() logic.SortMode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode logic.SortMode) {
	if mode == s.state.CurrentMode {
		return
	}

	oldMode := s.state.CurrentMode
	s.state.CurrentMode = mode

	s.bus.Publish(SortModeChangedEvent{
		OldMode: oldMode,
		NewMode: mode,
	})
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	s.SetMode(s.state.CurrentMode.Next())
}

// Sort returns the codes of set in the current order
func (s *Service) Sort(set domain.AreaSet) []string {
	return uilogic.SortCodes(set, s.state.CurrentMode)
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	return s.state.CurrentMode.String()
}
