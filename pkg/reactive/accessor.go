package reactive

// Accessor is a read capability over reactive storage. Signal, ReadSignal,
// Memo and Derived implement it, so components can accept any of them.
type Accessor[T any] interface {
	// Get reads and subscribes the current listener.
	Get() T
	// Peek reads without subscribing.
	Peek() T
	// TryGet is Get that reports false on disposed storage.
	TryGet() (T, bool)
	// TryPeek is Peek that reports false on disposed storage.
	TryPeek() (T, bool)
	// IsDisposed reports whether the storage's scope has ended.
	IsDisposed() bool
}

var (
	_ Accessor[int] = (*Signal[int])(nil)
	_ Accessor[int] = (*ReadSignal[int])(nil)
	_ Accessor[int] = (*Memo[int])(nil)
	_ Accessor[int] = (*Derived[int])(nil)
)

// Derived is an uncached read-only view computed by a closure. Get runs the
// closure under the caller's listener, so the caller subscribes directly to
// whatever the closure reads. Use a Memo when the computation is expensive.
type Derived[T any] struct {
	fn       func() T
	disposed func() bool
}

// Derive wraps fn as an Accessor.
func Derive[T any](fn func() T) *Derived[T] {
	return &Derived[T]{fn: fn}
}

// BoundTo ties the view's liveness to check, typically the IsDisposed of the
// storage the closure reads. It returns d.
func (d *Derived[T]) BoundTo(check func() bool) *Derived[T] {
	d.disposed = check
	return d
}

// Get evaluates the closure with tracking.
func (d *Derived[T]) Get() T {
	return d.fn()
}

// Peek evaluates the closure without tracking.
func (d *Derived[T]) Peek() T {
	var v T
	Untracked(func() { v = d.fn() })
	return v
}

// TryGet reports false when the bound storage is disposed.
func (d *Derived[T]) TryGet() (T, bool) {
	if d.IsDisposed() {
		var zero T
		return zero, false
	}
	return d.Get(), true
}

// TryPeek reports false when the bound storage is disposed.
func (d *Derived[T]) TryPeek() (T, bool) {
	if d.IsDisposed() {
		var zero T
		return zero, false
	}
	return d.Peek(), true
}

// IsDisposed reports the bound liveness, false when unbound.
func (d *Derived[T]) IsDisposed() bool {
	return d.disposed != nil && d.disposed()
}
