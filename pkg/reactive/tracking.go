package reactive

import (
	"runtime"
	"sync"
)

// trackingState is the reactive bookkeeping of one goroutine.
type trackingState struct {
	// owner receives newly created signals, memos and effects.
	owner *Owner

	// listener is subscribed by tracked reads. nil disables tracking.
	listener Listener

	// batchDepth counts nested Batch calls. While positive, notifications
	// are queued in pending instead of delivered.
	batchDepth int
	pending    []Listener
}

var trackingStates sync.Map // goroutine id -> *trackingState

// goroutineID parses the id out of the "goroutine N [" stack header.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	const prefix = len("goroutine ")
	var id uint64
	for i := prefix; i < n; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}

func state() *trackingState {
	gid := goroutineID()
	if st, ok := trackingStates.Load(gid); ok {
		return st.(*trackingState)
	}
	st := &trackingState{}
	trackingStates.Store(gid, st)
	return st
}

func currentListener() Listener {
	return state().listener
}

func swapListener(l Listener) Listener {
	st := state()
	old := st.listener
	st.listener = l
	return old
}

// CurrentOwner returns the owner new reactive values are attached to, or nil.
func CurrentOwner() *Owner {
	return state().owner
}

func swapOwner(o *Owner) *Owner {
	st := state()
	old := st.owner
	st.owner = o
	return old
}

// WithOwner runs fn with o as the current owner. Goroutines spawned by a
// component use it to keep their signals inside the component's scope.
func WithOwner(o *Owner, fn func()) {
	old := swapOwner(o)
	defer swapOwner(old)
	fn()
}

// WithListener runs fn with l subscribed to every tracked read.
func WithListener(l Listener, fn func()) {
	old := swapListener(l)
	defer swapListener(old)
	fn()
}

// ReleaseGoroutine drops the tracking state of the calling goroutine.
// Long-lived worker goroutines call it before exiting.
func ReleaseGoroutine() {
	trackingStates.Delete(goroutineID())
}

// TrackedGoroutines reports how many goroutines currently hold tracking state.
func TrackedGoroutines() int {
	n := 0
	trackingStates.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// track subscribes the current listener, if any, to base and records base
// as a source of effects and memos so they can unsubscribe on re-run.
func track(base *signalBase) {
	l := currentListener()
	if l == nil {
		return
	}
	base.subscribe(l)
	if s, ok := l.(sourceTracker); ok {
		s.addSource(base)
	}
}

// sourceTracker is implemented by listeners that re-collect dependencies on
// every run.
type sourceTracker interface {
	Listener
	addSource(source *signalBase)
}
