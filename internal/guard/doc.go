// Package guard implements a stale-response guard for asynchronous
// operations issued repeatedly from the same call site.
//
// When a call site fires overlapping async work (a search re-run on every
// keystroke, a list refetch on every filter change), completions can arrive
// in any order. The guard makes sure only the result of the most recently
// issued operation is ever applied, and that nothing is applied after the
// owning context has been torn down.
//
// Each operation gets a token when it starts. Tokens are strictly
// increasing per guard, so "newest" is always well defined. A completion
// carrying anything but the current token is silently dropped — dropping a
// stale result is normal control flow here, not a failure.
//
// Used by: search service (query superseding)
// Purpose: latest-wins ordering by issuance, independent of arrival order
package guard
