package model

import (
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/store"
)

type backing uint8

const (
	backedBySignal backing = iota + 1
	backedByField
)

// modelRead is the read side of a Model.
type modelRead[T any] struct {
	kind   backing
	signal reactive.Accessor[T]
	field  store.FieldOf[T]
}

func (r modelRead[T]) get() T {
	switch r.kind {
	case backedBySignal:
		return r.signal.Get()
	case backedByField:
		return r.field.Get()
	}
	panic("model: use of zero Model")
}

func (r modelRead[T]) peek() T {
	switch r.kind {
	case backedBySignal:
		return r.signal.Peek()
	case backedByField:
		return r.field.Peek()
	}
	panic("model: use of zero Model")
}

func (r modelRead[T]) tryGet() (T, bool) {
	switch r.kind {
	case backedBySignal:
		return r.signal.TryGet()
	case backedByField:
		return r.field.TryGet()
	}
	var zero T
	return zero, false
}

func (r modelRead[T]) tryPeek() (T, bool) {
	switch r.kind {
	case backedBySignal:
		return r.signal.TryPeek()
	case backedByField:
		return r.field.TryPeek()
	}
	var zero T
	return zero, false
}

func (r modelRead[T]) accessor() reactive.Accessor[T] {
	switch r.kind {
	case backedBySignal:
		return r.signal
	case backedByField:
		f := r.field
		return reactive.Derive(f.Get).BoundTo(f.IsDisposed)
	}
	panic("model: use of zero Model")
}

// modelWrite is the write side of a Model.
type modelWrite[T any] struct {
	kind   backing
	signal *reactive.WriteSignal[T]
	field  store.FieldOf[T]
}

func (w modelWrite[T]) set(v T) bool {
	switch w.kind {
	case backedBySignal:
		// Modify notifies even when v equals the current value, matching
		// field-backed storage.
		return w.signal.Modify(func(p *T) bool {
			*p = v
			return true
		})
	case backedByField:
		if w.field.IsDisposed() {
			return false
		}
		w.field.Set(v)
		return true
	}
	panic("model: use of zero Model")
}

func (w modelWrite[T]) modify(fn func(*T) bool) bool {
	switch w.kind {
	case backedBySignal:
		return w.signal.Modify(fn)
	case backedByField:
		return w.field.Modify(fn)
	}
	panic("model: use of zero Model")
}

func (w modelWrite[T]) isDisposed() bool {
	switch w.kind {
	case backedBySignal:
		return w.signal.IsDisposed()
	case backedByField:
		return w.field.IsDisposed()
	}
	return true
}
