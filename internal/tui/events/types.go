package events

import "github.com/skimdocs/skim/internal/docs"

// EventType identifies the type of event
type EventType string

const (
	// Navigation events
	PageSelectedEvent EventType = "page.selected"

	// Search events
	SearchResultsEvent EventType = "search.results"
	SearchClearedEvent EventType = "search.cleared"
	SearchFailedEvent  EventType = "search.failed"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	ThemeToggledEvent  EventType = "ui.theme.toggled"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

type PageSelectedPayload struct {
	Slug string
	Line int // optional target line, 0 for top of page
}

type SearchResultsPayload struct {
	Query   string
	Matches []docs.Match
}

type SearchFailedPayload struct {
	Query string
	Err   error
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}

type ThemeToggledPayload struct {
	Name string
}
