package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo caches a derived computation. It recomputes lazily on the first read
// after any of its dependencies changed, and can itself be tracked.
type Memo[T any] struct {
	base signalBase

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid is false until the first computation and after invalidation.
	valid atomic.Bool
	// gen counts invalidations. A computation that overlapped one is not
	// marked valid.
	gen atomic.Uint64

	sources   []*signalBase
	sourcesMu sync.Mutex

	// computing guards against a memo reading itself.
	computing atomic.Bool

	disposed atomic.Bool
}

// NewMemo creates a memo owned by the current owner. compute does not run
// until the first read.
func NewMemo[T any](compute func() T) *Memo[T] {
	m := &Memo[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
	if o := CurrentOwner(); o != nil {
		o.own(m)
	}
	return m
}

// Get returns the cached value, recomputing if stale, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	if !m.disposed.Load() {
		track(&m.base)
	}
	return m.Peek()
}

// Peek returns the cached value without subscribing. It still recomputes a
// stale value.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() && !m.disposed.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	defer m.valueMu.RUnlock()
	return m.value
}

// TryGet reports false when the memo is disposed.
func (m *Memo[T]) TryGet() (T, bool) {
	if m.disposed.Load() {
		var zero T
		return zero, false
	}
	return m.Get(), true
}

// TryPeek reports false when the memo is disposed.
func (m *Memo[T]) TryPeek() (T, bool) {
	if m.disposed.Load() {
		var zero T
		return zero, false
	}
	return m.Peek(), true
}

// IsDisposed reports whether the owning scope has ended.
func (m *Memo[T]) IsDisposed() bool {
	return m.disposed.Load()
}

// MarkDirty invalidates the cache and forwards the notification.
func (m *Memo[T]) MarkDirty() {
	m.gen.Add(1)
	if m.valid.CompareAndSwap(true, false) || m.computing.Load() {
		m.base.notify()
	}
}

// ID returns the memo's identifier.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()
	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

func (m *Memo[T]) dropSources() {
	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()
}

func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		return
	}
	defer m.computing.Store(false)

	m.dropSources()

	gen := m.gen.Load()
	old := swapListener(m)
	next := m.compute()
	swapListener(old)

	m.valueMu.Lock()
	m.value = next
	m.valueMu.Unlock()
	if m.gen.Load() == gen {
		m.valid.Store(true)
	}
}

func (m *Memo[T]) dispose() {
	if m.disposed.Swap(true) {
		return
	}
	m.dropSources()
	m.base.clearSubscribers()
}
