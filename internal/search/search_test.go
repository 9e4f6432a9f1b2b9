package search

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/tui/events"
)

func newTestService(t *testing.T) (*Service, <-chan events.Event) {
	t.Helper()

	registry, err := docs.Load()
	if err != nil {
		t.Fatalf("docs.Load() error = %v", err)
	}

	broker := events.NewBroker()
	sub := broker.Subscribe(
		events.SearchResultsEvent,
		events.SearchClearedEvent,
		events.SearchFailedEvent,
	)

	s := NewService(registry, broker, 10*time.Millisecond)
	t.Cleanup(s.Close)
	return s, sub
}

func waitEvent(t *testing.T, sub <-chan events.Event) events.Event {
	t.Helper()
	select {
	case e := <-sub:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search event")
		return events.Event{}
	}
}

func TestQuery_PublishesResults(t *testing.T) {
	s, sub := newTestService(t)

	s.Query("debounce")

	e := waitEvent(t, sub)
	if e.Type != events.SearchResultsEvent {
		t.Fatalf("event = %q, want %q", e.Type, events.SearchResultsEvent)
	}
	payload, ok := e.Payload.(events.SearchResultsPayload)
	if !ok {
		t.Fatalf("payload has type %T", e.Payload)
	}
	if payload.Query != "debounce" {
		t.Errorf("payload.Query = %q, want %q", payload.Query, "debounce")
	}
	if len(payload.Matches) == 0 {
		t.Fatal("expected hits for a word the handbook uses constantly")
	}
	for _, m := range payload.Matches {
		if m.Slug == "" || m.Line == 0 || m.Excerpt == "" {
			t.Errorf("incomplete match: %+v", m)
		}
	}
}

func TestQuery_BurstYieldsOnlyLatestResults(t *testing.T) {
	s, sub := newTestService(t)

	// Keystroke burst. Debouncing plus the guard mean exactly one
	// results event, for the final query.
	s.Query("tim")
	s.Query("time")
	s.Query("timer")

	e := waitEvent(t, sub)
	payload, ok := e.Payload.(events.SearchResultsPayload)
	if !ok {
		t.Fatalf("event %q payload has type %T", e.Type, e.Payload)
	}
	if payload.Query != "timer" {
		t.Errorf("results for %q, want %q", payload.Query, "timer")
	}

	// No further results may trickle in for the superseded queries.
	select {
	case extra := <-sub:
		t.Fatalf("unexpected extra event %q after burst", extra.Type)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestQuery_EmptyClears(t *testing.T) {
	s, sub := newTestService(t)

	s.Query("")

	if e := waitEvent(t, sub); e.Type != events.SearchClearedEvent {
		t.Fatalf("event = %q, want %q", e.Type, events.SearchClearedEvent)
	}
}

func TestClear_SupersedesPendingQuery(t *testing.T) {
	s, sub := newTestService(t)

	s.Query("liveness")
	s.Clear()

	if e := waitEvent(t, sub); e.Type != events.SearchClearedEvent {
		t.Fatalf("event = %q, want %q", e.Type, events.SearchClearedEvent)
	}

	// The pending query was dropped before its quiet period elapsed.
	select {
	case extra := <-sub:
		t.Fatalf("unexpected event %q after Clear", extra.Type)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestClose_NothingAppliesAfterTeardown(t *testing.T) {
	s, sub := newTestService(t)

	s.Query("cancellation")
	s.Close()

	select {
	case e := <-sub:
		t.Fatalf("event %q delivered after Close", e.Type)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestScanFailure_ReportsQuery(t *testing.T) {
	s, sub := newTestService(t)

	s.applyError(&scanError{query: "liveness", err: errors.New("boom")})

	e := waitEvent(t, sub)
	if e.Type != events.SearchFailedEvent {
		t.Fatalf("event = %q, want %q", e.Type, events.SearchFailedEvent)
	}
	payload, ok := e.Payload.(events.SearchFailedPayload)
	if !ok {
		t.Fatalf("payload has type %T", e.Payload)
	}
	if payload.Query != "liveness" {
		t.Errorf("payload.Query = %q, want %q", payload.Query, "liveness")
	}
	if payload.Err == nil || !strings.Contains(payload.Err.Error(), "boom") {
		t.Errorf("payload.Err = %v, want the wrapped cause", payload.Err)
	}
}

func TestPlainTextCache_ReusedAcrossQueries(t *testing.T) {
	s, sub := newTestService(t)

	s.Query("guard")
	waitEvent(t, sub)
	cached := s.plain.Len()
	if cached == 0 {
		t.Fatal("scan should have populated the plain text cache")
	}

	s.Query("token")
	waitEvent(t, sub)
	if s.plain.Len() != cached {
		t.Errorf("cache grew from %d to %d on a second query", cached, s.plain.Len())
	}
}
