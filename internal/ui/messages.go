package ui

import (
	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// aboutPagerMsg contains the result of the about pager command
type aboutPagerMsg struct {
	err error
}

// copyDoneMsg contains the result of copying an area summary
type copyDoneMsg struct {
	name string
	err  error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
