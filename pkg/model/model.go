package model

import "github.com/meltui/melt/pkg/reactive"

// Sink receives the value after every committed write of a Model built with
// WithSink. *reactive.WriteSignal satisfies it.
type Sink[T any] interface {
	Set(T)
}

// SinkFunc adapts a plain callback to Sink.
type SinkFunc[T any] func(T)

// Set calls f.
func (f SinkFunc[T]) Set(v T) { f(v) }

// Model is a two-way bindable value. Read and write always address the same
// storage; the optional sink is a separate, write-only destination that is
// told about every committed write.
//
// The zero Model is not usable. Build one with New, Default, FromSignal,
// FromPair, FromField or WithSink.
type Model[T any] struct {
	read  modelRead[T]
	write modelWrite[T]
	sink  Sink[T]
}

// Get returns the current value and tracks it.
func (m Model[T]) Get() T {
	return m.read.get()
}

// Peek returns the current value without tracking.
func (m Model[T]) Peek() T {
	return m.read.peek()
}

// TryGet is Get that reports false once the storage is disposed.
func (m Model[T]) TryGet() (T, bool) {
	return m.read.tryGet()
}

// TryPeek is Peek that reports false once the storage is disposed.
func (m Model[T]) TryPeek() (T, bool) {
	return m.read.tryPeek()
}

// Set replaces the value and notifies observers, even when v equals the
// current value. Writes to disposed storage are dropped and do not reach the
// sink.
func (m Model[T]) Set(v T) {
	if m.write.set(v) {
		m.notifySink()
	}
}

// Update hands fn a copy of the value. The copy is committed, observers
// notified and the sink told only when fn returns true. Update reports
// whether the change was committed.
func (m Model[T]) Update(fn func(*T) bool) bool {
	if !m.write.modify(fn) {
		return false
	}
	m.notifySink()
	return true
}

// UpdateWith is Update for mutators that also compute a result. The result
// is returned whether or not the change was committed; ok is false only when
// the storage is disposed and fn never ran.
func UpdateWith[T, R any](m Model[T], fn func(*T) (changed bool, result R)) (result R, ok bool) {
	ran := false
	m.Update(func(v *T) bool {
		ran = true
		var changed bool
		changed, result = fn(v)
		return changed
	})
	return result, ran
}

// IsDisposed reports whether the write storage is disposed.
func (m Model[T]) IsDisposed() bool {
	return m.write.isDisposed()
}

// Signal returns a read-only view usable wherever a reactive.Accessor is
// accepted.
func (m Model[T]) Signal() reactive.Accessor[T] {
	return m.read.accessor()
}

func (m Model[T]) notifySink() {
	if m.sink == nil {
		return
	}
	if v, ok := m.read.tryPeek(); ok {
		m.sink.Set(v)
	}
}
