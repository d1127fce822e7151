package navigation

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
)

// Service moves a cursor over the rows of one table and keeps it in view
type Service struct {
	state   *State
	bus     events.EventBus
	queryFn func() int // returns the number of rows
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			ViewportHeight: 10, // replaced on first layout
			MaxIndex:       -1,
		},
		bus: bus,
	}
}

// SetQueryFunction sets the function that reports the row count
func (s *Service) SetQueryFunction(fn func() int) {
	s.queryFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight sets how many rows are visible at once
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.refresh()
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refresh()
	target := s.state.Cursor
	page := s.state.ViewportHeight - 1
	if page < 1 {
		page = 1
	}

	switch direction {
	case DirectionUp:
		target--
	case DirectionDown:
		target++
	case DirectionPageUp:
		target -= page
	case DirectionPageDown:
		target += page
	case DirectionHome:
		target = 0
	case DirectionEnd:
		target = s.state.MaxIndex
	}
	s.moveTo(target)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refresh()
	s.moveTo(index)
}

// Reset puts the cursor back on the first row
func (s *Service) Reset() {
	s.refresh()
	s.moveTo(0)
	s.state.ViewportOffset = 0
}

func (s *Service) moveTo(index int) {
	old := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if old != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{OldIndex: old, NewIndex: s.state.Cursor})
	}
}

func (s *Service) refresh() {
	if s.queryFn != nil {
		s.state.MaxIndex = s.queryFn() - 1
	}
	if s.state.Cursor > s.state.MaxIndex {
		s.state.Cursor = s.clampIndex(s.state.Cursor)
	}
}

func (s *Service) clampIndex(index int) int {
	if index > s.state.MaxIndex {
		index = s.state.MaxIndex
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (s *Service) ensureVisible() {
	offset := logic.ScrollIntoView(s.state.Cursor, s.state.ViewportOffset,
		s.state.ViewportHeight, s.state.MaxIndex+1)
	if offset != s.state.ViewportOffset {
		s.state.ViewportOffset = offset
		s.bus.Publish(ViewportChangedEvent{Offset: offset, Height: s.state.ViewportHeight})
	}
}
