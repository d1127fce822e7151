package coordinator

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/events"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/navigation"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/selection"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/sorting"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/services/viewport"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Navigation map[state.Tab]*navigation.Service
	Selection  *selection.Service
	Sorting    *sorting.Service
	Layout     *viewport.Subscription

	// Dependencies
	bus   events.EventBus
	store logic.DatasetStore
	state *state.AppState
}

// NewCoordinator creates a new coordinator with all services. layout is
// the coordinator's own view of the shared viewport; Close releases it.
func NewCoordinator(bus events.EventBus, store logic.DatasetStore, appState *state.AppState, layout *viewport.Subscription) *Coordinator {
	c := &Coordinator{
		Navigation: make(map[state.Tab]*navigation.Service, len(state.Tabs)),
		Sorting:    sorting.NewService(bus),
		Layout:     layout,
		bus:        bus,
		store:      store,
		state:      appState,
	}
	c.Selection = selection.NewService(bus, c)
	for _, tab := range state.Tabs {
		c.Navigation[tab] = navigation.NewService(bus)
	}

	// Wire up service dependencies
	c.wireServices()

	// Subscribe to events
	c.subscribeToEvents()

	return c
}

// wireServices connects services with their dependencies
func (c *Coordinator) wireServices() {
	for _, tab := range state.Tabs {
		tab := tab
		c.Navigation[tab].SetQueryFunction(func() int {
			return len(c.state.Rows[tab])
		})
	}

	if c.Layout != nil {
		c.Layout.OnChange(func(mode viewport.Mode) {
			old := viewport.Desktop
			if mode == viewport.Desktop {
				old = viewport.Mobile
			}
			c.bus.Publish(viewport.ModeChangedEvent{Old: old, New: mode})
		})
	}
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	// When sort mode changes, re-sort
	c.bus.Subscribe(events.TypeOf(sorting.SortModeChangedEvent{}), func(e interface{}) {
		c.UpdateOrderedLists()
	})

	// Keep the selected row in view whichever view changed it
	c.bus.Subscribe(events.TypeOf(selection.SelectionChangedEvent{}), func(e interface{}) {
		c.RevealSelection()
	})
}

// UpdateOrderedLists rebuilds the rows of every tab from the current
// dataset, sort mode and filter
func (c *Coordinator) UpdateOrderedLists() {
	ds := c.state.Dataset
	for _, tab := range state.Tabs {
		set := tab.Areas(ds)
		codes := c.Sorting.Sort(set)
		c.state.Rows[tab] = uilogic.FilterCodes(set, codes, c.state.FilterQuery)
	}
	for _, tab := range state.Tabs {
		c.Navigation[tab].MoveToIndex(c.Navigation[tab].GetCursor())
	}
	c.RevealSelection()
}

// ApplyFilter sets the filter query and rebuilds the rows. Cursors return
// to the top except where they follow the selection.
func (c *Coordinator) ApplyFilter(query string) {
	c.state.FilterQuery = query
	for _, tab := range state.Tabs {
		c.Navigation[tab].Reset()
	}
	c.UpdateOrderedLists()
}

// RevealSelection moves the cursor of the selection's tab onto the
// selected row so the table scrolls it into view
func (c *Coordinator) RevealSelection() {
	sel := c.Selection.Current()
	tab, ok := state.TabForKind(sel.Kind)
	if !ok {
		return
	}
	if i := uilogic.IndexOf(c.state.Rows[tab], sel.ID); i >= 0 {
		c.Navigation[tab].MoveToIndex(i)
	}
}

// ActiveNavigation returns the navigation service of the active tab
func (c *Coordinator) ActiveNavigation() *navigation.Service {
	return c.Navigation[c.state.ActiveTab]
}

// SwitchTab moves delta tabs along, wrapping around
func (c *Coordinator) SwitchTab(delta int) {
	c.state.ActiveTab = c.state.ActiveTab.Next(delta)
}

// GetCurrentIndex returns the cursor of the active tab
func (c *Coordinator) GetCurrentIndex() int {
	return c.ActiveNavigation().GetCursor()
}

// GetCurrentCode returns the area code under the cursor, or ""
func (c *Coordinator) GetCurrentCode() string {
	rows := c.state.ActiveRows()
	i := c.GetCurrentIndex()
	if i < 0 || i >= len(rows) {
		return ""
	}
	return rows[i]
}

// Activate applies the activation key to the row under the cursor
func (c *Coordinator) Activate(key string) {
	code := c.GetCurrentCode()
	if code == "" {
		return
	}
	c.Selection.KeyPress(c.state.ActiveTab.Kind(), code, key)
}

// Mode returns the current layout mode
func (c *Coordinator) Mode() viewport.Mode {
	if c.Layout == nil {
		return viewport.Desktop
	}
	return c.Layout.Mode()
}

// SetViewportHeight updates the visible table rows across services
func (c *Coordinator) SetViewportHeight(height int) {
	for _, nav := range c.Navigation {
		nav.SetViewportHeight(height)
	}
}

// SyncDataset takes the store's current dataset into the UI state. A
// selection whose area no longer exists is cleared.
func (c *Coordinator) SyncDataset() {
	c.state.Dataset = c.store.Current()
	c.UpdateOrderedLists()

	sel := c.Selection.Current()
	if tab, ok := state.TabForKind(sel.Kind); ok {
		if _, exists := tab.Areas(c.state.Dataset).Get(sel.ID); !exists {
			c.Selection.Clear()
		}
	}
}

// Close releases the coordinator's viewport subscription
func (c *Coordinator) Close() {
	if c.Layout != nil {
		c.Layout.Close()
	}
}
