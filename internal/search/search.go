// Package search runs the reader's live full-text search.
//
// Keystrokes are debounced into queries; each query becomes one guarded
// asynchronous scan over the handbook. Rapid re-queries supersede each
// other, so whatever order scans finish in, the results shown always
// belong to the newest query. Results and failures are published on the
// event broker.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skimdocs/skim/internal/csync"
	"github.com/skimdocs/skim/internal/debounce"
	"github.com/skimdocs/skim/internal/docs"
	"github.com/skimdocs/skim/internal/guard"
	"github.com/skimdocs/skim/internal/tui/events"
)

// result pairs a query with its matches so the apply path can report
// which query the published matches belong to.
type result struct {
	query   string
	matches []docs.Match
}

// scanError carries the query alongside a scan failure so the failure
// path can report which query went wrong, mirroring result.
type scanError struct {
	query string
	err   error
}

func (e *scanError) Error() string { return e.err.Error() }
func (e *scanError) Unwrap() error { return e.err }

// Service owns one search call site: its guard, its debouncer, and a
// cache of page plain text.
type Service struct {
	registry *docs.Registry
	broker   *events.Broker
	guard    *guard.Guard[result]
	debounce *debounce.Debouncer
	plain    *csync.Map[string, string]
}

// NewService creates the search service. delay is the keystroke quiet
// period before a query fires.
func NewService(registry *docs.Registry, broker *events.Broker, delay time.Duration) *Service {
	s := &Service{
		registry: registry,
		broker:   broker,
		debounce: debounce.New(delay),
		plain:    csync.NewMap[string, string](),
	}
	s.guard = guard.New(s.applyResult, s.applyError)
	return s
}

// Query schedules a search for q after the quiet period. An empty query
// clears results instead of searching.
func (s *Service) Query(q string) {
	if q == "" {
		s.Clear()
		return
	}
	s.debounce.Call(func() { s.run(q) })
}

// Clear drops any pending or in-flight search and tells the UI to empty
// the result view.
func (s *Service) Clear() {
	s.debounce.Cancel()
	s.guard.Begin() // supersede whatever is in flight
	s.broker.Publish(events.Event{Type: events.SearchClearedEvent})
}

// Close tears the service down. No result, however timely, can reach the
// UI afterwards.
func (s *Service) Close() {
	s.debounce.Stop()
	s.guard.Close()
}

// run issues one guarded scan for q.
func (s *Service) run(q string) {
	tok, ctx := s.guard.BeginContext(context.Background())

	go func() {
		matches, err := s.scan(ctx, q)
		if err != nil {
			s.guard.Fail(tok, &scanError{query: q, err: err})
			return
		}
		s.guard.Complete(tok, result{query: q, matches: matches})
	}()
}

// scan walks every page looking for q, checking for cancellation between
// pages so a superseded scan unwinds early.
func (s *Service) scan(ctx context.Context, q string) ([]docs.Match, error) {
	var all []docs.Match
	for _, page := range s.registry.Pages() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		all = append(all, docs.FindMatches(page, s.plainText(page), q)...)
	}
	return all, nil
}

// plainText returns the stripped text of a page, computing it once.
func (s *Service) plainText(page docs.Page) string {
	if cached, ok := s.plain.Get(page.Slug); ok {
		return cached
	}
	plain := docs.PlainText(page.Body)
	s.plain.Set(page.Slug, plain)
	return plain
}

// applyResult runs only for the freshest completed scan.
func (s *Service) applyResult(r result) {
	s.broker.Publish(events.Event{
		Type: events.SearchResultsEvent,
		Payload: events.SearchResultsPayload{
			Query:   r.query,
			Matches: r.matches,
		},
	})
}

// applyError runs only for a genuine failure of the current scan.
func (s *Service) applyError(err error) {
	payload := events.SearchFailedPayload{
		Err: fmt.Errorf("search failed: %w", err),
	}
	var se *scanError
	if errors.As(err, &se) {
		payload.Query = se.query
	}
	s.broker.Publish(events.Event{
		Type:    events.SearchFailedEvent,
		Payload: payload,
	})
}
