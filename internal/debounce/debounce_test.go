package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCall_BurstCoalescesToLatest(t *testing.T) {
	d := New(30 * time.Millisecond)
	defer d.Stop()

	var fired int32
	var got atomic.Value

	// Rapid burst: only the last callback may fire, once.
	for _, q := range []string{"t", "ti", "tim", "time", "timer"} {
		q := q
		d.Call(func() {
			atomic.AddInt32(&fired, 1)
			got.Store(q)
		})
	}

	time.Sleep(150 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("fired %d times, want 1", n)
	}
	if v, _ := got.Load().(string); v != "timer" {
		t.Fatalf("fired with %q, want %q", v, "timer")
	}
}

func TestCall_SeparatedCallsBothFire(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(100 * time.Millisecond)
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(100 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 2 {
		t.Fatalf("fired %d times, want 2", n)
	}
}

func TestFlush_RunsPendingImmediately(t *testing.T) {
	d := New(time.Hour) // would never fire on its own
	defer d.Stop()

	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	d.Flush()

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("fired %d times after Flush, want 1", n)
	}

	// Nothing left to run.
	d.Flush()
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("fired %d times after second Flush, want 1", n)
	}
}

func TestCancel_DropsPendingButStaysUsable(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()

	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 10) })
	d.Cancel()

	d.Call(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(100 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("fired total = %d, want 1 (canceled callback must not run)", n)
	}
}

func TestStop_DropsPendingAndRefusesNew(t *testing.T) {
	d := New(10 * time.Millisecond)

	var fired int32
	d.Call(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()
	d.Call(func() { atomic.AddInt32(&fired, 1) })

	time.Sleep(100 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Fatalf("fired %d times after Stop, want 0", n)
	}
}
