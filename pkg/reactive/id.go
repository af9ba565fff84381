package reactive

import "sync/atomic"

var idCounter atomic.Uint64

// nextID hands out identifiers for signals, memos, effects and owners.
func nextID() uint64 {
	return idCounter.Add(1)
}
