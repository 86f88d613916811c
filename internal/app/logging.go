package app

import (
	"log"

	"mirrsearch/internal/eventbus"
)

// subscribeLogging writes a log line for every lifecycle event
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchIssued, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchIssuedEvent); ok {
			log.Printf("Search #%d issued: %+v", event.Seq, event.Request)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search #%d completed: %d results in %s", event.Seq, event.Count, event.Duration)
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchFailedEvent); ok {
			log.Printf("Search #%d failed: %v", event.Seq, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventSearchDiscarded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchDiscardedEvent); ok {
			log.Printf("Search #%d discarded, #%d is newer", event.Seq, event.Latest)
		}
	})
	bus.Subscribe(eventbus.EventFiltersCleared, func(e eventbus.DomainEvent) {
		log.Printf("Filters cleared")
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s (endpoint %s)", event.Path, event.BaseURL)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}
