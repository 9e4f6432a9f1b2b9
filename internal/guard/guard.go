package guard

import (
	"context"
	"errors"
	"sync"
)

// Token identifies one asynchronous operation issued through a Guard.
// Tokens are strictly increasing per guard instance; the largest token
// ever minted is the only one considered current.
type Token uint64

// Guard filters completions of overlapping asynchronous operations so
// that only the newest operation's outcome is ever observed.
//
// A Guard owns three pieces of state: the current token, a liveness flag,
// and the cancel handles of in-flight operations. All three belong to a
// single call site — never share one Guard between unrelated call sites.
type Guard[T any] struct {
	mu      sync.Mutex
	last    uint64
	current Token
	live    bool
	cancels map[Token]context.CancelFunc

	apply func(T)
	fail  func(error)
}

// New creates a guard for one call site.
//
// apply receives the result of an operation that completed while it was
// still the newest and the guard was still live. fail receives genuine
// failures under the same conditions; it may be nil, in which case
// current-token failures are dropped too.
func New[T any](apply func(T), fail func(error)) *Guard[T] {
	return &Guard[T]{
		live:    true,
		cancels: make(map[Token]context.CancelFunc),
		apply:   apply,
		fail:    fail,
	}
}

// Begin mints the token for a new operation and makes it current.
// The previously current operation is superseded immediately — if it
// registered a cancel handle, that handle is invoked so in-flight work
// is not wasted. Superseded work that ignores cancellation is still
// filtered out when it completes.
func (g *Guard[T]) Begin() Token {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.begin()
}

// BeginContext is Begin plus cooperative cancellation: it derives a child
// context that is canceled when the operation is superseded or the guard
// is closed. Pass the returned context into the async work so blocking
// calls unwind early.
//
// If the guard is already closed, the returned context arrives canceled
// and the token can never apply.
func (g *Guard[T]) BeginContext(ctx context.Context) (Token, context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tok := g.begin()
	opCtx, cancel := context.WithCancel(ctx)
	if !g.live {
		cancel()
		return tok, opCtx
	}
	g.cancels[tok] = cancel
	return tok, opCtx
}

// begin mints the next token. Caller must hold g.mu.
func (g *Guard[T]) begin() Token {
	if cancel, ok := g.cancels[g.current]; ok {
		cancel()
		delete(g.cancels, g.current)
	}
	g.last++
	g.current = Token(g.last)
	return g.current
}

// Complete delivers the result of the operation identified by tok.
// The result is applied iff tok is still current and the guard is live;
// otherwise it is discarded silently. Reports whether the result was
// applied. Discarding is expected control flow, so Complete never errors.
//
// The apply callback runs while the guard's lock is held, so applies are
// ordered by token even when completions race with Begin. Callbacks must
// not call back into the guard.
func (g *Guard[T]) Complete(tok Token, result T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.settle(tok) {
		return false
	}
	if g.apply != nil {
		g.apply(result)
	}
	return true
}

// Fail delivers a failure from the operation identified by tok.
//
// Only a genuine failure on the current, still-live token reaches the
// fail callback. Stale failures and observed cancellation signals are
// suppressed so the caller never surfaces an error for work nobody is
// waiting on anymore. Reports whether the error was propagated.
func (g *Guard[T]) Fail(tok Token, err error) bool {
	if err == nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ok := g.settle(tok)

	// A canceled operation was superseded or torn down on purpose;
	// its error is a discard even when the token check passes.
	if errors.Is(err, context.Canceled) {
		return false
	}
	if ok && g.fail != nil {
		g.fail(err)
		return true
	}
	return false
}

// settle releases tok's cancel handle and reports whether tok may still
// observe state. Caller must hold g.mu.
func (g *Guard[T]) settle(tok Token) bool {
	if cancel, ok := g.cancels[tok]; ok {
		cancel()
		delete(g.cancels, tok)
	}
	return g.live && tok == g.current
}

// Close tears the guard down. The liveness flag flips false exactly once,
// every in-flight operation is canceled, and no completion — however
// fresh its token — can apply afterwards. Close is idempotent.
func (g *Guard[T]) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.live {
		return
	}
	g.live = false
	for tok, cancel := range g.cancels {
		cancel()
		delete(g.cancels, tok)
	}
}

// Live reports whether the guard has not been closed yet.
func (g *Guard[T]) Live() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.live
}

// Current returns the most recently minted token, or zero if Begin has
// never been called.
func (g *Guard[T]) Current() Token {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Pending returns the number of in-flight operations that registered a
// cancel handle. Useful for debugging and tests.
func (g *Guard[T]) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cancels)
}
