package model

import (
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/store"
)

// New returns a Model over a fresh private cell holding v. The cell belongs
// to the current reactive owner.
func New[T any](v T) Model[T] {
	return FromSignal(reactive.NewSignal(v))
}

// Default returns a Model over a fresh cell holding the zero value.
func Default[T any]() Model[T] {
	var zero T
	return New(zero)
}

// FromSignal shares an existing cell between the caller and the component.
func FromSignal[T any](s *reactive.Signal[T]) Model[T] {
	r, w := s.Split()
	return FromPair[T](r, w)
}

// FromPair builds a Model from a read accessor and a write half. The two
// must address the same storage, e.g. the halves of one Signal, or a Memo
// derived from the cell that w writes.
func FromPair[T any](r reactive.Accessor[T], w *reactive.WriteSignal[T]) Model[T] {
	return Model[T]{
		read:  modelRead[T]{kind: backedBySignal, signal: r},
		write: modelWrite[T]{kind: backedBySignal, signal: w},
	}
}

// FromField binds a Model to a store slot.
func FromField[T any](f store.FieldOf[T]) Model[T] {
	return Model[T]{
		read:  modelRead[T]{kind: backedByField, field: f},
		write: modelWrite[T]{kind: backedByField, field: f},
	}
}

// WithSink returns a Model over a fresh private cell seeded with *v, or with
// the zero value when v is nil, that reports every committed write to sink.
// It lets a component accept "current value plus change callback" from a
// caller that keeps its own state.
func WithSink[T any](v *T, sink Sink[T]) Model[T] {
	var seed T
	if v != nil {
		seed = *v
	}
	m := New(seed)
	m.sink = sink
	return m
}

// WithCallback is WithSink for a plain function.
func WithCallback[T any](v *T, fn func(T)) Model[T] {
	if fn == nil {
		return WithSink[T](v, nil)
	}
	return WithSink[T](v, SinkFunc[T](fn))
}
