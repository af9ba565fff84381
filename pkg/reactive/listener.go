package reactive

// Listener is notified when something it read has changed.
// Memos and effects are listeners; tests and hosts may supply their own.
type Listener interface {
	// MarkDirty is called after a tracked dependency was written.
	MarkDirty()

	// ID identifies the listener for subscription and batch deduplication.
	ID() uint64
}

// Cleanup is returned by an effect body and runs before the next run and on
// disposal.
type Cleanup func()

// disposable is storage that an Owner tears down with its scope.
type disposable interface {
	dispose()
}
