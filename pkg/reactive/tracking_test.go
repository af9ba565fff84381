package reactive

import (
	"sync"
	"sync/atomic"
	"testing"
)

// testListener counts notifications.
type testListener struct {
	id    uint64
	dirty atomic.Int64
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty()   { l.dirty.Add(1) }
func (l *testListener) ID() uint64   { return l.id }
func (l *testListener) count() int64 { return l.dirty.Load() }

func TestWithListenerRestores(t *testing.T) {
	outer := newTestListener()
	inner := newTestListener()

	WithListener(outer, func() {
		WithListener(inner, func() {
			if currentListener() != inner {
				t.Error("expected inner listener")
			}
		})
		if currentListener() != outer {
			t.Error("expected outer listener restored")
		}
	})
	if currentListener() != nil {
		t.Error("expected no listener outside WithListener")
	}
}

func TestWithOwnerRestores(t *testing.T) {
	a := NewOwner(nil)
	b := NewOwner(nil)

	WithOwner(a, func() {
		WithOwner(b, func() {
			if CurrentOwner() != b {
				t.Error("expected owner b")
			}
		})
		if CurrentOwner() != a {
			t.Error("expected owner a restored")
		}
	})
}

func TestTrackingIsPerGoroutine(t *testing.T) {
	l := newTestListener()
	var wg sync.WaitGroup

	WithListener(l, func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer ReleaseGoroutine()
			if currentListener() != nil {
				t.Error("listener leaked into another goroutine")
			}
		}()
		wg.Wait()
	})
}

func TestGoroutineIDStable(t *testing.T) {
	if goroutineID() != goroutineID() {
		t.Error("goroutine id changed within one goroutine")
	}
	if goroutineID() == 0 {
		t.Error("goroutine id not parsed")
	}
}

func TestReleaseGoroutineDropsState(t *testing.T) {
	before := TrackedGoroutines()
	done := make(chan int)
	go func() {
		_ = CurrentOwner()
		n := TrackedGoroutines()
		ReleaseGoroutine()
		done <- n
	}()
	if n := <-done; n != before+1 {
		t.Errorf("tracked while running = %d, want %d", n, before+1)
	}
	if n := TrackedGoroutines(); n != before {
		t.Errorf("tracked after release = %d, want %d", n, before)
	}
}
