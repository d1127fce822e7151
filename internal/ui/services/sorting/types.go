package sorting

import "github.com/paulfryers/coronavirus-dashboard/internal/logic"

// State holds sorting state
type State struct {
	CurrentMode logic.SortMode
}

// Event types
type SortModeChangedEvent struct {
	OldMode logic.SortMode
	NewMode logic.SortMode
}