package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchIssued    EventType = "SearchIssued"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchDiscarded EventType = "SearchDiscarded"
	EventFiltersCleared  EventType = "FiltersCleared"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchIssuedEvent is emitted when a request is handed to the transport
type SearchIssuedEvent struct {
	Seq     uint64
	Request QueryRequest
}

func (e SearchIssuedEvent) Type() EventType { return EventSearchIssued }

// SearchCompletedEvent is emitted when the latest request's results are applied
type SearchCompletedEvent struct {
	Seq      uint64
	Count    int
	Duration time.Duration
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the latest request fails
type SearchFailedEvent struct {
	Seq uint64
	Err error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a response arrives for a superseded request
type SearchDiscardedEvent struct {
	Seq    uint64
	Latest uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// FiltersClearedEvent is emitted when all filters are reset
type FiltersClearedEvent struct{}

func (e FiltersClearedEvent) Type() EventType { return EventFiltersCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
