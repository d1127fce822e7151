package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDataLoadRequested EventType = "DataLoadRequested"
	EventDataLoaded        EventType = "DataLoaded"
	EventDataLoadFailed    EventType = "DataLoadFailed"
	EventDataFileChanged   EventType = "DataFileChanged"
	EventChartsExported    EventType = "ChartsExported"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DataLoadRequestedEvent asks for the dataset to be (re)loaded
type DataLoadRequestedEvent struct {
	Reason string
}

func (e DataLoadRequestedEvent) Type() EventType { return EventDataLoadRequested }

// DataLoadedEvent is emitted after a dataset has been parsed successfully
type DataLoadedEvent struct {
	Source string
	Areas  int
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }

// DataLoadFailedEvent is emitted when the data source could not be read
type DataLoadFailedEvent struct {
	Source string
	Err    error
}

func (e DataLoadFailedEvent) Type() EventType { return EventDataLoadFailed }

// DataFileChangedEvent is emitted by the watcher after a debounced write
type DataFileChangedEvent struct {
	Path string
}

func (e DataFileChangedEvent) Type() EventType { return EventDataFileChanged }

// ChartsExportedEvent is emitted after charts were written to disk
type ChartsExportedEvent struct {
	Files []string
}

func (e ChartsExportedEvent) Type() EventType { return EventChartsExported }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
