package reactive

import (
	"sync"
	"testing"
)

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	// Initial value
	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	// Set value
	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	// Update value
	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalSubscription(t *testing.T) {
	count := NewSignal(0)

	var mu sync.Mutex
	var got []int
	cancel := count.Subscribe(func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	defer cancel()

	count.Set(1)
	count.Set(1) // same value, should not notify
	count.Set(2)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("expected notifications [1 2], got %v", got)
	}
}

func TestSignalUnsubscribe(t *testing.T) {
	count := NewSignal(0)

	notified := 0
	cancel := count.Subscribe(func(int) { notified++ })

	count.Set(1)
	cancel()
	cancel() // second cancel is a no-op
	count.Set(2)

	if notified != 1 {
		t.Errorf("expected 1 notification after cancel, got %d", notified)
	}
}

func TestSignalCustomEquals(t *testing.T) {
	// Treat all negative values as equal to each other.
	s := NewSignal(-1).WithEquals(func(a, b int) bool {
		return a == b || (a < 0 && b < 0)
	})

	notified := 0
	cancel := s.Subscribe(func(int) { notified++ })
	defer cancel()

	s.Set(-5) // equal under custom function
	if notified != 0 {
		t.Errorf("expected no notification for equal value, got %d", notified)
	}

	s.Set(3)
	if notified != 1 {
		t.Errorf("expected 1 notification, got %d", notified)
	}
}

func TestSignalDeepEqualFallback(t *testing.T) {
	s := NewSignal([]string{"a"})

	notified := 0
	cancel := s.Subscribe(func([]string) { notified++ })
	defer cancel()

	s.Set([]string{"a"}) // deep-equal, no notification
	if notified != 0 {
		t.Errorf("expected no notification for deep-equal slice, got %d", notified)
	}

	s.Set([]string{"a", "b"})
	if notified != 1 {
		t.Errorf("expected 1 notification, got %d", notified)
	}
}

func TestSignalConcurrentAccess(t *testing.T) {
	count := NewSignal(0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				count.Update(func(n int) int { return n + 1 })
			}
		}()
	}
	wg.Wait()

	if count.Get() != 1000 {
		t.Errorf("expected 1000 after concurrent updates, got %d", count.Get())
	}
}

func TestSignalIDsUnique(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	if a.ID() == b.ID() {
		t.Error("expected distinct signal IDs")
	}
}
