// File: api/pool.go
// License: Apache-2.0
//
// Defines the fixed-slot allocation contracts: deterministic acquire/release
// of preallocated buffers with injected failure policy.

package api

// Allocator hands out fixed-capacity buffers from preallocated storage.
//
// Acquire never allocates from the heap on its success path. The returned
// buffer is exclusively owned by the caller until the matching Release.
// Release accepts exactly the slice returned by Acquire; any other value
// is routed to the invalid-release policy hook.
type Allocator interface {
	// Acquire returns a buffer able to hold at least size bytes,
	// or whatever the triggered policy hook returns.
	Acquire(size int) []byte

	// Release returns a previously acquired buffer to the allocator.
	Release(buf []byte)
}

// Hooks is the failure policy injected into an allocator at construction.
//
// Each method corresponds to one unrecoverable condition. The default
// implementation terminates the process; a custom implementation may
// return fallback memory, which the allocator propagates to its caller
// at the cost of the allocation-free guarantee on that path.
type Hooks interface {
	// OnOversized fires when a request exceeds the slot size.
	// No slot state has been touched when it runs.
	OnOversized(requested int) []byte

	// OnExhausted fires when a full ring probe found no free slot.
	OnExhausted(requested int) []byte

	// OnInvalidRelease fires when Release is given memory the
	// allocator does not own. No slot state is mutated.
	OnInvalidRelease()
}

// PoolTracer observes policy-hook trips. Implementations must tolerate
// concurrent calls. Tracers are never invoked on successful acquire or
// release, keeping the hot path free of observation cost.
type PoolTracer interface {
	RecordEvent(kind string, size int)
}

// PoolStats is a point-in-time snapshot of allocator counters.
type PoolStats struct {
	Capacity        int64
	SlotSize        int64
	TotalAcquired   int64
	TotalReleased   int64
	InUse           int64
	Oversized       int64
	Exhausted       int64
	InvalidReleases int64
}
