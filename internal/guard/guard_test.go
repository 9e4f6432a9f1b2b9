package guard

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// collector records what a guard lets through.
type collector struct {
	applied []string
	errs    []error
}

func newCollector() (*collector, *Guard[string]) {
	c := &collector{}
	g := New(
		func(s string) { c.applied = append(c.applied, s) },
		func(err error) { c.errs = append(c.errs, err) },
	)
	return c, g
}

func TestBegin_TokensStrictlyIncrease(t *testing.T) {
	_, g := newCollector()

	var prev Token
	for i := 0; i < 100; i++ {
		tok := g.Begin()
		if tok <= prev {
			t.Fatalf("token %d not greater than previous %d", tok, prev)
		}
		prev = tok
	}
}

func TestComplete_SingleOperationAppliesOnce(t *testing.T) {
	c, g := newCollector()

	tok := g.Begin()
	if !g.Complete(tok, "result") {
		t.Fatal("current live completion should apply")
	}
	if len(c.applied) != 1 || c.applied[0] != "result" {
		t.Fatalf("applied = %v, want [result]", c.applied)
	}
}

func TestComplete_LatestTokenWinsRegardlessOfArrival(t *testing.T) {
	c, g := newCollector()

	t1 := g.Begin()
	t2 := g.Begin()

	// Newer operation finishes first, the old one limps in afterwards.
	if !g.Complete(t2, "new") {
		t.Fatal("newest completion should apply")
	}
	if g.Complete(t1, "old") {
		t.Fatal("superseded completion must be discarded")
	}

	if len(c.applied) != 1 || c.applied[0] != "new" {
		t.Fatalf("applied = %v, want [new]", c.applied)
	}
}

func TestComplete_RapidFilterChanges(t *testing.T) {
	// Three rapid filter changes issue tokens 1, 2, 3. The network
	// delivers completions as 2, 3, 1. Only 3's result may stick.
	c, g := newCollector()

	t1 := g.Begin()
	t2 := g.Begin()
	t3 := g.Begin()

	g.Complete(t2, "two")
	g.Complete(t3, "three")
	g.Complete(t1, "one")

	if len(c.applied) != 1 || c.applied[0] != "three" {
		t.Fatalf("applied = %v, want [three]", c.applied)
	}
}

func TestComplete_StaleNeverAppliesAfterFresh(t *testing.T) {
	// An old completion racing a newer Begin+Complete must never end up
	// as the result that sticks. Applies run under the guard's lock, so
	// the applied sequence is ordered by token.
	for i := 0; i < 1000; i++ {
		c, g := newCollector()
		t1 := g.Begin()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			g.Complete(t1, "old")
		}()
		go func() {
			defer wg.Done()
			t2 := g.Begin()
			g.Complete(t2, "new")
		}()
		wg.Wait()

		if n := len(c.applied); n == 0 || c.applied[n-1] != "new" {
			t.Fatalf("applied = %v, want the newest result last", c.applied)
		}
	}
}

func TestClose_DiscardsRegardlessOfFreshness(t *testing.T) {
	c, g := newCollector()

	tok := g.Begin()
	g.Close()

	if g.Complete(tok, "late") {
		t.Fatal("completion after teardown must be discarded")
	}
	if len(c.applied) != 0 {
		t.Fatalf("applied = %v, want none", c.applied)
	}
	if g.Live() {
		t.Fatal("guard should report not live after Close")
	}
}

func TestClose_Idempotent(t *testing.T) {
	_, g := newCollector()
	g.Close()
	g.Close() // must not panic or re-flip anything
	if g.Live() {
		t.Fatal("guard live after double Close")
	}
}

func TestFail_StaleErrorSuppressed(t *testing.T) {
	c, g := newCollector()

	t1 := g.Begin()
	g.Begin() // supersedes t1

	if g.Fail(t1, errors.New("boom")) {
		t.Fatal("stale error must not propagate")
	}
	if len(c.errs) != 0 {
		t.Fatalf("errs = %v, want none", c.errs)
	}
}

func TestFail_CurrentErrorPropagates(t *testing.T) {
	c, g := newCollector()

	tok := g.Begin()
	boom := errors.New("boom")
	if !g.Fail(tok, boom) {
		t.Fatal("current live failure should propagate")
	}
	if len(c.errs) != 1 || !errors.Is(c.errs[0], boom) {
		t.Fatalf("errs = %v, want [boom]", c.errs)
	}
}

func TestFail_CancellationNeverSurfaces(t *testing.T) {
	c, g := newCollector()

	tok := g.Begin()
	if g.Fail(tok, context.Canceled) {
		t.Fatal("observed cancellation is a discard, not a failure")
	}
	if g.Fail(tok, nil) {
		t.Fatal("nil error must be ignored")
	}
	if len(c.errs) != 0 {
		t.Fatalf("errs = %v, want none", c.errs)
	}
}

func TestBeginContext_SupersedingCancelsPredecessor(t *testing.T) {
	_, g := newCollector()

	_, ctx1 := g.BeginContext(context.Background())
	if err := ctx1.Err(); err != nil {
		t.Fatalf("fresh operation context already done: %v", err)
	}

	_, ctx2 := g.BeginContext(context.Background())
	if ctx1.Err() == nil {
		t.Fatal("superseded operation context should be canceled")
	}
	if ctx2.Err() != nil {
		t.Fatal("newest operation context must stay open")
	}
}

func TestBeginContext_CloseCancelsInFlight(t *testing.T) {
	_, g := newCollector()

	_, ctx := g.BeginContext(context.Background())
	g.Close()

	if ctx.Err() == nil {
		t.Fatal("teardown should cancel in-flight operations")
	}
	if g.Pending() != 0 {
		t.Fatalf("pending = %d after Close, want 0", g.Pending())
	}
}

func TestBeginContext_AfterCloseArrivesCanceled(t *testing.T) {
	c, g := newCollector()
	g.Close()

	tok, ctx := g.BeginContext(context.Background())
	if ctx.Err() == nil {
		t.Fatal("operations begun after teardown get a canceled context")
	}
	if g.Complete(tok, "zombie") {
		t.Fatal("post-teardown token must never apply")
	}
	if len(c.applied) != 0 {
		t.Fatalf("applied = %v, want none", c.applied)
	}
}

func TestComplete_ReleasesCancelHandle(t *testing.T) {
	_, g := newCollector()

	tok, _ := g.BeginContext(context.Background())
	if g.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", g.Pending())
	}
	g.Complete(tok, "done")
	if g.Pending() != 0 {
		t.Fatalf("pending = %d after completion, want 0", g.Pending())
	}
}
