package csync

import (
	"sync"
	"testing"
)

func TestMap_BasicOperations(t *testing.T) {
	m := NewMap[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)

	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("Get(missing) reported existence")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	m.Delete("a")
	if _, ok := m.Get("a"); ok {
		t.Fatal("Get(a) found deleted key")
	}
}

func TestMap_ConcurrentAccess(t *testing.T) {
	m := NewMap[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Set(i, i*i)
			m.Get(i % 10)
		}(i)
	}
	wg.Wait()

	if m.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", m.Len())
	}

	seen := 0
	m.Range(func(k, v int) bool {
		if v != k*k {
			t.Fatalf("value for %d is %d, want %d", k, v, k*k)
		}
		seen++
		return true
	})
	if seen != 50 {
		t.Fatalf("Range visited %d pairs, want 50", seen)
	}
}
