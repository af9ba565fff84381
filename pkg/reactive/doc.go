// Package reactive is the signal runtime that melt components are built on.
//
// Reads are tracked automatically: calling Get on a Signal, Memo or Derived
// while an Effect or Memo is computing subscribes that listener, and the
// next write marks it dirty.
//
//	count := reactive.NewSignal(0)
//	doubled := reactive.NewMemo(func() int { return count.Get() * 2 })
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    fmt.Println("doubled:", doubled.Get())
//	    return nil
//	})
//
//	count.Set(4)
//	owner.RunPendingEffects() // prints "doubled: 8"
//
// # Ownership
//
// Every signal, memo and effect belongs to the Owner that is current when it
// is created. Disposing the owner disposes everything it owns, children
// first. Disposed storage never panics: Get and Peek return the last value
// without tracking, TryGet and TryPeek report ok == false, and writes are
// dropped.
//
// # Scheduling
//
// Effects are not re-run synchronously. A write marks dependent effects as
// pending on their owner and the host drives Owner.RunPendingEffects after
// each event, so several writes inside one event produce one re-run.
//
// # Goroutines
//
// Values are mutex guarded and may be read or written from any goroutine.
// Tracking state (current listener, current owner, batch depth) is per
// goroutine, so goroutines that create signals must re-establish an owner
// with WithOwner.
package reactive
