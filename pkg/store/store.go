package store

import "github.com/meltui/melt/pkg/reactive"

// Store is a reactive cell over a structured value.
type Store[S any] struct {
	sig *reactive.Signal[S]
}

// New creates a store owned by the current reactive owner.
func New[S any](initial S) *Store[S] {
	return &Store[S]{sig: reactive.NewSignal(initial)}
}

// Get returns a copy of the whole value and tracks the store.
func (s *Store[S]) Get() S { return s.sig.Get() }

// Peek returns a copy of the whole value without tracking.
func (s *Store[S]) Peek() S { return s.sig.Peek() }

// Set replaces the whole value.
func (s *Store[S]) Set(v S) { s.sig.Set(v) }

// Modify mutates a copy of the value and commits it when fn reports a
// change. It returns whether the change was committed.
func (s *Store[S]) Modify(fn func(*S) bool) bool { return s.sig.Modify(fn) }

// IsDisposed reports whether the store's owner has been disposed.
func (s *Store[S]) IsDisposed() bool { return s.sig.IsDisposed() }

// Signal exposes the backing cell for callers that need a plain accessor.
func (s *Store[S]) Signal() *reactive.Signal[S] { return s.sig }
