// File: pool/staticpool.go
// License: Apache-2.0
//
// The fixed-slot pool core. One contiguous aligned arena, one atomic
// occupancy flag per slot, linear probing from a per-P start offset.
// Nothing here blocks, locks, or touches the heap on the success path.

package pool

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/ApexAI/static-exception/api"
	"github.com/ApexAI/static-exception/internal/concurrency"
)

// slot tracks occupancy of one fixed-size buffer. The flag is padded so
// neighboring slots never share a cache line under contended probing.
type slot struct {
	occupied atomic.Bool
	_        cpu.CacheLinePad
}

// StaticPool serves fixed-size buffers from storage reserved once at
// construction. Slot buffer identity is stable for the pool lifetime;
// only occupancy toggles. Ownership of a buffer transfers with the atomic
// flag transition itself: while a slot is occupied, only the acquiring
// caller may touch its bytes, so no further synchronization is needed.
//
// There is no fairness guarantee among competing callers and no retry or
// backoff: every operation is a bounded probe that either completes or
// invokes a policy hook.
type StaticPool struct {
	capacity int
	slotSize int
	stride   int

	raw   []byte // entire backing region, as reserved by the arena allocator
	arena []byte // aligned window inside raw, capacity*stride bytes
	base  uintptr

	slots  []slot
	starts *concurrency.StartCache

	hooks  api.Hooks
	tracer api.PoolTracer
	mem    arenaAllocator

	acquired  atomic.Int64
	released  atomic.Int64
	oversized atomic.Int64
	exhausted atomic.Int64
	invalid   atomic.Int64

	closeOnce sync.Once
	closeErr  error
}

var _ api.Allocator = (*StaticPool)(nil)

// New reserves all slot storage eagerly and returns the pool. On any
// failure no pool exists: there is no partially initialized state.
func New(cfg Config) (*StaticPool, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stride := alignUp(cfg.SlotSize, cfg.Alignment)
	mem := newArenaAllocator()

	// Over-reserve by one alignment unit so the first slot can be
	// aligned regardless of where the region lands.
	raw, err := mem.alloc(cfg.Capacity*stride + cfg.Alignment)
	if err != nil {
		return nil, api.NewError(api.ErrCodeArenaAlloc, "arena reservation failed").
			WithContext("bytes", cfg.Capacity*stride+cfg.Alignment).
			WithContext("cause", err.Error())
	}

	rawBase := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	pad := int((uintptr(cfg.Alignment) - rawBase%uintptr(cfg.Alignment)) % uintptr(cfg.Alignment))
	arena := raw[pad : pad+cfg.Capacity*stride]

	p := &StaticPool{
		capacity: cfg.Capacity,
		slotSize: cfg.SlotSize,
		stride:   stride,
		raw:      raw,
		arena:    arena,
		base:     uintptr(unsafe.Pointer(unsafe.SliceData(arena))),
		slots:    make([]slot, cfg.Capacity),
		starts:   concurrency.NewStartCache(cfg.Capacity),
		hooks:    cfg.Hooks,
		tracer:   cfg.Tracer,
		mem:      mem,
	}
	return p, nil
}

// Acquire returns a slot able to hold size bytes. The returned slice is
// always the whole slot (len == SlotSize) regardless of the requested
// size; sub-slot allocation does not exist. On oversized requests or
// exhaustion the corresponding hook's result is returned instead.
func (p *StaticPool) Acquire(size int) []byte {
	if size > p.slotSize {
		p.oversized.Add(1)
		p.trace(EventOversized, size)
		return p.hooks.OnOversized(size)
	}

	start := p.starts.Get()
	for i := 1; i <= p.capacity; i++ {
		idx := start + i
		if idx >= p.capacity {
			idx -= p.capacity
		}
		// Swap is test-and-set: previous false means this caller
		// now exclusively owns the slot.
		if !p.slots[idx].occupied.Swap(true) {
			p.acquired.Add(1)
			return p.slotBuf(idx)
		}
	}

	p.exhausted.Add(1)
	p.trace(EventExhausted, size)
	return p.hooks.OnExhausted(size)
}

// Release returns a buffer previously handed out by Acquire. Any slice
// not rooted at a slot base triggers the invalid-release hook and mutates
// nothing.
func (p *StaticPool) Release(buf []byte) {
	idx, ok := p.slotIndex(buf)
	if !ok {
		p.invalid.Add(1)
		p.trace(EventInvalidRelease, len(buf))
		p.hooks.OnInvalidRelease()
		return
	}
	p.slots[idx].occupied.Store(false)
	p.released.Add(1)
}

// Contains reports whether buf is rooted at one of the pool's slots.
// Read-only over addresses fixed at construction, safe to call
// concurrently with Acquire and Release.
func (p *StaticPool) Contains(buf []byte) bool {
	_, ok := p.slotIndex(buf)
	return ok
}

// UsedCount reports the number of occupied slots.
//
// WARNING: not safe to call concurrently with Acquire or Release. Each
// flag is observed and restored as two separate operations, so concurrent
// mutation can corrupt the count or transiently flip occupancy. Test and
// diagnostic use only.
func (p *StaticPool) UsedCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].occupied.Swap(true) {
			n++
		} else {
			p.slots[i].occupied.Store(false)
		}
	}
	return n
}

// Stats returns a snapshot of the pool counters.
func (p *StaticPool) Stats() api.PoolStats {
	acquired := p.acquired.Load()
	released := p.released.Load()
	return api.PoolStats{
		Capacity:        int64(p.capacity),
		SlotSize:        int64(p.slotSize),
		TotalAcquired:   acquired,
		TotalReleased:   released,
		InUse:           acquired - released,
		Oversized:       p.oversized.Load(),
		Exhausted:       p.exhausted.Load(),
		InvalidReleases: p.invalid.Load(),
	}
}

// Capacity returns the number of slots.
func (p *StaticPool) Capacity() int { return p.capacity }

// SlotSize returns the maximum servable request size.
func (p *StaticPool) SlotSize() int { return p.slotSize }

// Close releases the backing arena. Idempotent. The pool must not be used
// afterwards; callers own the teardown ordering and must release or
// abandon outstanding buffers first.
func (p *StaticPool) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.mem.free(p.raw)
		p.raw, p.arena = nil, nil
	})
	return p.closeErr
}

// slotBuf returns slot idx's storage, capacity-capped so callers cannot
// reach into the neighboring slot.
func (p *StaticPool) slotBuf(idx int) []byte {
	off := idx * p.stride
	return p.arena[off : off+p.slotSize : off+p.slotSize]
}

// slotIndex is the reverse lookup from buffer address to slot index.
// Uniform stride makes it O(1): a buffer belongs to the pool exactly when
// its base lands on a stride boundary inside the arena.
func (p *StaticPool) slotIndex(buf []byte) (int, bool) {
	if cap(buf) == 0 {
		return 0, false
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if addr < p.base {
		return 0, false
	}
	off := addr - p.base
	if off%uintptr(p.stride) != 0 {
		return 0, false
	}
	idx := int(off / uintptr(p.stride))
	if idx >= p.capacity {
		return 0, false
	}
	return idx, true
}

func (p *StaticPool) trace(kind string, size int) {
	if p.tracer != nil {
		p.tracer.RecordEvent(kind, size)
	}
}
