package store

import "github.com/meltui/melt/pkg/reactive"

// FieldOf is a read/write projection of a T slot, independent of the type
// of the store that holds it.
type FieldOf[T any] interface {
	reactive.Accessor[T]

	// Set replaces the slot and notifies observers of the store.
	Set(T)

	// Modify mutates a copy of the slot. The copy is committed and observers
	// notified only when fn returns true.
	Modify(fn func(*T) bool) bool
}

var _ FieldOf[int] = (*Field[struct{ N int }, int])(nil)

// Field projects one slot of a Store[S].
type Field[S, T any] struct {
	store *Store[S]
	path  func(*S) *T
}

// At returns the field of s addressed by path. path must return a pointer
// into the value it is given and must not retain it.
func At[S, T any](s *Store[S], path func(*S) *T) *Field[S, T] {
	return &Field[S, T]{store: s, path: path}
}

// Sub returns the field addressed by path inside f.
func Sub[S, T, U any](f *Field[S, T], path func(*T) *U) *Field[S, U] {
	parent := f.path
	return &Field[S, U]{
		store: f.store,
		path:  func(s *S) *U { return path(parent(s)) },
	}
}

// Get projects the store's current value and tracks the store.
func (f *Field[S, T]) Get() T {
	v := f.store.sig.Get()
	return *f.path(&v)
}

// Peek projects the store's current value without tracking.
func (f *Field[S, T]) Peek() T {
	v := f.store.sig.Peek()
	return *f.path(&v)
}

// TryGet reports false when the store is disposed.
func (f *Field[S, T]) TryGet() (T, bool) {
	v, ok := f.store.sig.TryGet()
	if !ok {
		var zero T
		return zero, false
	}
	return *f.path(&v), true
}

// TryPeek reports false when the store is disposed.
func (f *Field[S, T]) TryPeek() (T, bool) {
	v, ok := f.store.sig.TryPeek()
	if !ok {
		var zero T
		return zero, false
	}
	return *f.path(&v), true
}

// Set replaces the slot. Observers are notified even when the new value
// equals the old one.
func (f *Field[S, T]) Set(v T) {
	f.store.sig.Modify(func(s *S) bool {
		*f.path(s) = v
		return true
	})
}

// Modify mutates a copy of the slot; see FieldOf.
func (f *Field[S, T]) Modify(fn func(*T) bool) bool {
	return f.store.sig.Modify(func(s *S) bool {
		return fn(f.path(s))
	})
}

// IsDisposed reports the store's liveness.
func (f *Field[S, T]) IsDisposed() bool {
	return f.store.IsDisposed()
}

// Store returns the store the field projects into.
func (f *Field[S, T]) Store() *Store[S] {
	return f.store
}
