package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner is a reactive scope. Components create one per mounted instance;
// everything created while it is current belongs to it and is disposed with
// it. Owners nest the way components do.
type Owner struct {
	id     uint64
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	// owned holds signals and memos to dispose with the scope.
	owned   []disposable
	ownedMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	pendingEffects   []*Effect
	pendingEffectsMu sync.Mutex

	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool
}

// NewOwner creates a scope under parent. A nil parent makes a root.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// NewRoot creates a root owner, runs fn inside it and returns it.
// The caller disposes the root when the page or session ends.
func NewRoot(fn func(root *Owner)) *Owner {
	root := NewOwner(nil)
	WithOwner(root, func() { fn(root) })
	return root
}

// Child creates a child of o and runs fn inside it.
func (o *Owner) Child(fn func()) *Owner {
	child := NewOwner(o)
	WithOwner(child, fn)
	return child
}

// ID returns the owner's identifier.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent scope, nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has run.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// own attaches storage to the scope. Storage created inside an already
// disposed scope is disposed immediately.
func (o *Owner) own(d disposable) {
	if o.disposed.Load() {
		d.dispose()
		return
	}
	o.ownedMu.Lock()
	defer o.ownedMu.Unlock()
	o.owned = append(o.owned, d)
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.effectsMu.Lock()
	defer o.effectsMu.Unlock()
	o.effects = append(o.effects, e)
}

// OnCleanup registers fn to run at disposal, or runs it now if the scope is
// already gone.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) scheduleEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.pendingEffectsMu.Lock()
	defer o.pendingEffectsMu.Unlock()
	o.pendingEffects = append(o.pendingEffects, e)
}

// RunPendingEffects re-runs every scheduled effect in this scope and its
// children. Hosts call it after each event; effects scheduled while it runs
// wait for the next call.
func (o *Owner) RunPendingEffects() {
	if o.disposed.Load() {
		return
	}

	o.pendingEffectsMu.Lock()
	effects := o.pendingEffects
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	for _, e := range effects {
		if e.pending.Load() {
			e.run()
		}
	}

	for _, child := range o.snapshotChildren() {
		child.RunPendingEffects()
	}
}

// HasPendingEffects reports whether this scope or a descendant has effects
// waiting to run.
func (o *Owner) HasPendingEffects() bool {
	if o.disposed.Load() {
		return false
	}
	o.pendingEffectsMu.Lock()
	n := len(o.pendingEffects)
	o.pendingEffectsMu.Unlock()
	if n > 0 {
		return true
	}
	for _, child := range o.snapshotChildren() {
		if child.HasPendingEffects() {
			return true
		}
	}
	return false
}

func (o *Owner) snapshotChildren() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return append([]*Owner(nil), o.children...)
}

// Dispose tears the scope down: children last-created first, then effects,
// then owned signals and memos, then cleanups in reverse registration order.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}
	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()
	for _, e := range effects {
		e.dispose()
	}

	o.ownedMu.Lock()
	owned := o.owned
	o.owned = nil
	o.ownedMu.Unlock()
	for _, d := range owned {
		d.dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.pendingEffectsMu.Lock()
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()
}
