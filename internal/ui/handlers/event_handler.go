package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state       *state.AppState
	syncDataset func()
}

// NewEventHandler creates a new event handler. syncDataset is called after
// a new dataset has been stored.
func NewEventHandler(appState *state.AppState, syncDataset func()) *EventHandler {
	return &EventHandler{
		state:       appState,
		syncDataset: syncDataset,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DataLoadRequestedEvent:
		h.state.Loading = true
		if e.Reason != "" {
			h.state.SetStatus(fmt.Sprintf("Reloading (%s)...", e.Reason))
		}

	case eventbus.DataLoadedEvent:
		h.state.Loading = false
		h.state.Source = e.Source
		h.syncDataset()
		h.state.SetStatus(fmt.Sprintf("Loaded %d areas from %s", e.Areas, displaySource(e.Source)))

	case eventbus.DataLoadFailedEvent:
		// The previous dataset stays on screen.
		h.state.Loading = false
		h.state.SetError(fmt.Sprintf("Load failed: %v", e.Err))

	case eventbus.DataFileChangedEvent:
		h.state.SetStatus(fmt.Sprintf("%s changed, reloading...", filepath.Base(e.Path)))

	case eventbus.ChartsExportedEvent:
		if len(e.Files) == 0 {
			h.state.SetStatus("No charts exported")
			break
		}
		h.state.SetStatus(fmt.Sprintf("Exported %d charts to %s", len(e.Files), filepath.Dir(e.Files[0])))

	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.SetError(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		} else {
			h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
		}

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Configuration saved to %s", e.Path))
	}

	return nil
}

func displaySource(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return filepath.Base(src)
}
