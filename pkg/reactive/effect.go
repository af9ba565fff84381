package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a side effect that re-runs after the values it read change.
//
// The body runs once synchronously on creation. Later runs are scheduled on
// the owning Owner and happen in Owner.RunPendingEffects, so an effect with
// no owner only ever runs once.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources   []*signalBase
	sourcesMu sync.Mutex

	owner *Owner

	pending  atomic.Bool
	disposed atomic.Bool
	runs     atomic.Int64
}

// CreateEffect creates an effect in the current owner and runs it.
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: CurrentOwner(),
	}
	if e.owner != nil {
		e.owner.registerEffect(e)
	}
	e.run()
	return e
}

// OnMount runs fn once with no dependencies.
func OnMount(fn func()) {
	CreateEffect(func() Cleanup {
		Untracked(fn)
		return nil
	})
}

// OnCleanup registers fn on the current owner. Outside an owner it is a no-op.
func OnCleanup(fn func()) {
	if o := CurrentOwner(); o != nil {
		o.OnCleanup(fn)
	}
}

// MarkDirty schedules a re-run on the owner.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.pending.CompareAndSwap(false, true) && e.owner != nil {
		e.owner.scheduleEffect(e)
	}
}

// ID returns the effect's identifier.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs reports how many times the body has executed.
func (e *Effect) Runs() int64 {
	return e.runs.Load()
}

// Dispose stops the effect and runs its last cleanup.
func (e *Effect) Dispose() {
	e.dispose()
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}
	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.dropSources()

	prevListener := swapListener(e)
	prevOwner := swapOwner(e.owner)
	e.cleanup = e.fn()
	swapOwner(prevOwner)
	swapListener(prevListener)

	e.runs.Add(1)
}

func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()
	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

func (e *Effect) dropSources() {
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()
}

func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.dropSources()
}
