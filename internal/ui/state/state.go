package state

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Data
	Dataset *domain.Dataset
	Source  string

	// Table state
	ActiveTab Tab
	Rows      map[Tab][]string // sorted, filtered codes per tab

	// Filter state
	FilterQuery string

	// UI state
	ViewAsTable   bool // charts rendered as tables
	ShowHelp      bool
	Loading       bool
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Rows: make(map[Tab][]string, len(Tabs)),
	}
}

// ActiveRows returns the rows of the active tab
func (s *AppState) ActiveRows() []string {
	return s.Rows[s.ActiveTab]
}

// ActiveAreas returns the area set behind the active tab
func (s *AppState) ActiveAreas() domain.AreaSet {
	return s.ActiveTab.Areas(s.Dataset)
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// AreaName returns the display name of code in tab, or the code itself
func (s *AppState) AreaName(tab Tab, code string) string {
	if a, ok := tab.Areas(s.Dataset).Get(code); ok && a.Name != "" {
		return a.Name
	}
	return code
}
