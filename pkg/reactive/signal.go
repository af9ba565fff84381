package reactive

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// signalBase is the type-erased subscriber list shared by Signal and Memo.
type signalBase struct {
	id uint64

	subs  []Listener
	subMu sync.RWMutex
}

func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

func (s *signalBase) clearSubscribers() {
	s.subMu.Lock()
	s.subs = nil
	s.subMu.Unlock()
}

// notify marks every subscriber dirty, or queues them inside a batch.
// Subscribers are copied first so MarkDirty may re-enter the signal.
func (s *signalBase) notify() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	st := state()
	if st.batchDepth > 0 {
		st.pending = append(st.pending, subs...)
		return
	}
	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// Signal is a reactive cell. Identity is the pointer: copies of a *Signal
// share storage, and two signals holding equal values are still distinct.
type Signal[T any] struct {
	base signalBase

	value T
	mu    sync.RWMutex

	// equal decides whether Set and Update changed the value.
	// nil uses defaultEquals.
	equal func(T, T) bool

	disposed atomic.Bool
}

// NewSignal creates a cell owned by the current owner.
func NewSignal[T any](initial T) *Signal[T] {
	s := &Signal[T]{
		base:  signalBase{id: nextID()},
		value: initial,
	}
	if o := CurrentOwner(); o != nil {
		o.own(s)
	}
	return s
}

// Get returns the value and subscribes the current listener.
// A disposed signal returns its last value without subscribing.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	if !s.disposed.Load() {
		track(&s.base)
	}
	return value
}

// Peek returns the value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// TryGet is Get that reports false instead of reading disposed storage.
func (s *Signal[T]) TryGet() (T, bool) {
	if s.disposed.Load() {
		var zero T
		return zero, false
	}
	return s.Get(), true
}

// TryPeek is Peek that reports false instead of reading disposed storage.
func (s *Signal[T]) TryPeek() (T, bool) {
	if s.disposed.Load() {
		var zero T
		return zero, false
	}
	return s.Peek(), true
}

// Set replaces the value. Subscribers are notified only if the new value
// differs from the old one under the signal's equality function.
func (s *Signal[T]) Set(value T) {
	if s.disposed.Load() {
		dropWrite("Set", s.base.id)
		return
	}

	s.mu.Lock()
	changed := !s.equals(s.value, value)
	s.value = value
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// TrySet is Set that returns ErrDisposed instead of dropping the write.
func (s *Signal[T]) TrySet(value T) error {
	if s.disposed.Load() {
		return ErrDisposed
	}
	s.Set(value)
	return nil
}

// Update replaces the value with fn(current).
func (s *Signal[T]) Update(fn func(T) T) {
	if s.disposed.Load() {
		dropWrite("Update", s.base.id)
		return
	}

	// fn runs without the lock so it may read s.
	old := s.Peek()
	next := fn(old)
	changed := !s.equals(old, next)

	s.mu.Lock()
	s.value = next
	s.mu.Unlock()

	if changed {
		s.base.notify()
	}
}

// Modify hands fn a copy of the value to mutate. The copy is committed and
// subscribers notified only when fn returns true; the equality function is
// not consulted. Modify reports whether the mutation was committed.
//
// The last commit wins when two goroutines modify s at once.
//
// Reference-typed values (slices, maps, pointers) share their backing store
// with the copy, so a mutator that writes through them and returns false
// has still written. Mutators must report every change they make.
func (s *Signal[T]) Modify(fn func(*T) bool) bool {
	if s.disposed.Load() {
		dropWrite("Modify", s.base.id)
		return false
	}

	// fn runs without the lock so it may read s.
	draft := s.Peek()
	changed := fn(&draft)
	if changed {
		s.mu.Lock()
		s.value = draft
		s.mu.Unlock()
	}

	if changed {
		s.base.notify()
	}
	return changed
}

// WithEquals installs a custom equality function and returns s.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the signal's identifier.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// IsDisposed reports whether the owning scope has ended.
func (s *Signal[T]) IsDisposed() bool {
	return s.disposed.Load()
}

// Split returns the read and write halves of s. Both halves address the
// same storage.
func (s *Signal[T]) Split() (*ReadSignal[T], *WriteSignal[T]) {
	return &ReadSignal[T]{sig: s}, &WriteSignal[T]{sig: s}
}

func (s *Signal[T]) dispose() {
	if s.disposed.Swap(true) {
		return
	}
	s.base.clearSubscribers()
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals compares with == when the dynamic values allow it and falls
// back to reflect.DeepEqual for slices, maps and structs containing them.
func defaultEquals[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	ra, rb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if ra.Type() == rb.Type() && ra.Comparable() && rb.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// ReadSignal is the read-only half of a Signal.
type ReadSignal[T any] struct {
	sig *Signal[T]
}

// Get returns the value and subscribes the current listener.
func (r *ReadSignal[T]) Get() T { return r.sig.Get() }

// Peek returns the value without subscribing.
func (r *ReadSignal[T]) Peek() T { return r.sig.Peek() }

// TryGet reports false when the signal is disposed.
func (r *ReadSignal[T]) TryGet() (T, bool) { return r.sig.TryGet() }

// TryPeek reports false when the signal is disposed.
func (r *ReadSignal[T]) TryPeek() (T, bool) { return r.sig.TryPeek() }

// IsDisposed reports whether the signal is disposed.
func (r *ReadSignal[T]) IsDisposed() bool { return r.sig.IsDisposed() }

// ID returns the identifier of the underlying signal.
func (r *ReadSignal[T]) ID() uint64 { return r.sig.ID() }

// WriteSignal is the write-only half of a Signal.
type WriteSignal[T any] struct {
	sig *Signal[T]
}

// Set replaces the value.
func (w *WriteSignal[T]) Set(value T) { w.sig.Set(value) }

// Update replaces the value with fn(current).
func (w *WriteSignal[T]) Update(fn func(T) T) { w.sig.Update(fn) }

// Modify mutates a copy and commits it when fn reports a change.
func (w *WriteSignal[T]) Modify(fn func(*T) bool) bool { return w.sig.Modify(fn) }

// IsDisposed reports whether the signal is disposed.
func (w *WriteSignal[T]) IsDisposed() bool { return w.sig.IsDisposed() }

// ID returns the identifier of the underlying signal.
func (w *WriteSignal[T]) ID() uint64 { return w.sig.ID() }
