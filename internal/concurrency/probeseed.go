// File: internal/concurrency/probeseed.go
// License: Apache-2.0
//
// Per-P cached probe start offsets for contended slot rings.

package concurrency

import (
	"encoding/binary"
	"hash/maphash"
	"sync"
	"sync/atomic"
)

// StartCache hands out probe start offsets in [0, mod). An offset is
// issued by hashing a monotone identity and then cached in a sync.Pool,
// the closest allocation-free thread-scoped store Go offers: after
// warmup, callers on the same P keep getting the same cached offset
// without allocating or synchronizing beyond the pool's per-P fast path.
//
// Concurrently acquiring goroutines on different Ps therefore begin
// probing at different ring positions, which keeps contended
// compare-and-swap retries low. Only distribution matters here, not
// identity: losing a cached offset to GC and reissuing a fresh one is
// harmless.
type StartCache struct {
	mod   uint64
	seed  maphash.Seed
	next  atomic.Uint64
	cache sync.Pool
}

// NewStartCache creates a cache for offsets modulo mod. mod must be
// positive.
func NewStartCache(mod int) *StartCache {
	if mod <= 0 {
		panic("concurrency: start cache modulus must be positive")
	}
	c := &StartCache{
		mod:  uint64(mod),
		seed: maphash.MakeSeed(),
	}
	c.cache.New = func() any {
		v := new(uint32)
		*v = c.issue()
		return v
	}
	return c
}

// Get returns the calling P's cached start offset.
func (c *StartCache) Get() int {
	v := c.cache.Get().(*uint32)
	off := *v
	c.cache.Put(v)
	return int(off)
}

// issue hashes the next identity into an offset. Reentrant and lock-free;
// runs once per cached value, never on the warm path.
func (c *StartCache) issue() uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], c.next.Add(1))

	var h maphash.Hash
	h.SetSeed(c.seed)
	h.Write(b[:])
	return uint32(h.Sum64() % c.mod)
}
