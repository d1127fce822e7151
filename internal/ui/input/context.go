package input

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/coordinator"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State       *state.AppState
	Coordinator *coordinator.Coordinator
}

// Interactive reports whether rows accept activation
func (c *ModelContext) Interactive() bool {
	return c.Coordinator.Mode() == viewport.Desktop
}

// CurrentCode returns the area code under the cursor
func (c *ModelContext) CurrentCode() string {
	return c.Coordinator.GetCurrentCode()
}

// RowCount returns the number of rows in the active tab
func (c *ModelContext) RowCount() int {
	return len(c.State.ActiveRows())
}

// HasSelection returns true if an area is selected
func (c *ModelContext) HasSelection() bool {
	return !c.Coordinator.Selection.Current().IsZero()
}

// FilterQuery returns the applied filter
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}
