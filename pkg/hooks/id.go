package hooks

import "sync/atomic"

var globalIDCounter uint64

// nextID returns the next unique hook ID.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
