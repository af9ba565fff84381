package reactive

// Batch runs fn and delivers the notifications of every write inside it
// once, after the outermost Batch returns. Listeners notified by several
// writes are marked dirty a single time.
//
//	reactive.Batch(func() {
//	    first.Set("Ada")
//	    last.Set("Lovelace")
//	})
func Batch(fn func()) {
	st := state()
	st.batchDepth++
	defer func() {
		st.batchDepth--
		if st.batchDepth == 0 {
			flushPending(st)
		}
	}()
	fn()
}

func flushPending(st *trackingState) {
	pending := st.pending
	st.pending = nil
	if len(pending) == 0 {
		return
	}

	seen := make(map[uint64]struct{}, len(pending))
	for _, l := range pending {
		id := l.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		l.MarkDirty()
	}
}

// Untracked runs fn with tracking disabled. For a single read prefer Peek.
func Untracked(fn func()) {
	old := swapListener(nil)
	defer swapListener(old)
	fn()
}
