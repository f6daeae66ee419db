// File: adapters/runtime_adapter_test.go
// License: Apache-2.0

package adapters

import (
	"sync/atomic"
	"testing"

	"github.com/ApexAI/static-exception/api"
	"github.com/ApexAI/static-exception/fake"
	"github.com/ApexAI/static-exception/pool"
)

type countingHooks struct {
	oversized atomic.Int64
	exhausted atomic.Int64
	invalid   atomic.Int64
}

func (h *countingHooks) OnOversized(int) []byte { h.oversized.Add(1); return nil }
func (h *countingHooks) OnExhausted(int) []byte { h.exhausted.Add(1); return nil }
func (h *countingHooks) OnInvalidRelease()      { h.invalid.Add(1) }

func newBackingPool(t *testing.T, capacity, slotSize int) (*pool.StaticPool, *countingHooks) {
	t.Helper()
	hooks := &countingHooks{}
	p, err := pool.New(pool.Config{Capacity: capacity, SlotSize: slotSize, Hooks: hooks})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p, hooks
}

func TestNewRuntimeAdapter_LayoutCheck(t *testing.T) {
	alloc := &fake.FakeAllocator{}

	if _, err := NewRuntimeAdapter(nil, 1024); err == nil {
		t.Error("nil allocator accepted")
	}

	_, err := NewRuntimeAdapter(alloc, HeaderSize)
	apiErr, ok := err.(*api.Error)
	if !ok || apiErr.Code != api.ErrCodeHeaderTooLarge {
		t.Errorf("header-sized slot: got %v, want ErrCodeHeaderTooLarge", err)
	}

	a, err := NewRuntimeAdapter(alloc, 1024)
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}
	if a.MaxPayload() != 1024-HeaderSize {
		t.Errorf("MaxPayload = %d, want %d", a.MaxPayload(), 1024-HeaderSize)
	}
}

func TestAllocate_ZeroesHeaderOnly(t *testing.T) {
	// The fake pre-fills buffers so the zeroing is observable.
	alloc := &fake.FakeAllocator{SlotSize: 128, Fill: 0xAB}
	a, err := NewRuntimeAdapter(alloc, 128)
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	payload := a.Allocate(16)
	if payload == nil {
		t.Fatal("Allocate returned nil")
	}
	if len(payload) != 128-HeaderSize {
		t.Fatalf("payload len = %d, want %d", len(payload), 128-HeaderSize)
	}

	slotView := a.rebase(payload)
	for i := 0; i < HeaderSize; i++ {
		if slotView[i] != 0 {
			t.Fatalf("header byte %d = %#x, want 0", i, slotView[i])
		}
	}
	if payload[0] != 0xAB {
		t.Fatal("payload bytes were zeroed; only the header should be")
	}
}

func TestAllocateFree_RoundTrip(t *testing.T) {
	p, hooks := newBackingPool(t, 4, 256)
	a, err := NewRuntimeAdapter(p, p.SlotSize())
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	payload := a.Allocate(64)
	if payload == nil {
		t.Fatal("Allocate returned nil")
	}
	if !a.Owns(payload) {
		t.Fatal("Owns = false for adapter-allocated payload")
	}
	if p.UsedCount() != 1 {
		t.Fatalf("used count = %d after allocate, want 1", p.UsedCount())
	}

	for i := range payload {
		payload[i] = byte(i)
	}

	a.Free(payload)
	if p.UsedCount() != 0 {
		t.Fatalf("used count = %d after free, want 0", p.UsedCount())
	}
	if hooks.invalid.Load() != 0 {
		t.Fatalf("invalid hook fired %d times on a valid free", hooks.invalid.Load())
	}
}

func TestFree_ForeignPayload(t *testing.T) {
	p, hooks := newBackingPool(t, 4, 256)
	a, err := NewRuntimeAdapter(p, p.SlotSize())
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	if a.Owns(make([]byte, 64)) {
		t.Error("Owns = true for foreign payload")
	}

	a.Free(nil)
	if hooks.invalid.Load() != 1 {
		t.Fatalf("invalid hook fired %d times on nil free, want 1", hooks.invalid.Load())
	}
}

func TestAllocate_OversizePropagates(t *testing.T) {
	p, hooks := newBackingPool(t, 4, 256)
	a, err := NewRuntimeAdapter(p, p.SlotSize())
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	// Header accounting: the largest payload fits, one byte more does not.
	if b := a.Allocate(a.MaxPayload()); b == nil {
		t.Fatal("max payload allocation failed")
	}
	if b := a.Allocate(a.MaxPayload() + 1); b != nil {
		t.Fatalf("payload over the header-adjusted bound succeeded")
	}
	if hooks.oversized.Load() != 1 {
		t.Fatalf("oversized hook fired %d times, want 1", hooks.oversized.Load())
	}
}

func TestDependentObjects(t *testing.T) {
	p, hooks := newBackingPool(t, 4, 256)
	a, err := NewRuntimeAdapter(p, p.SlotSize())
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	obj := a.AllocateDependent()
	if len(obj) != HeaderSize {
		t.Fatalf("dependent object len = %d, want %d", len(obj), HeaderSize)
	}
	for i, b := range obj {
		if b != 0 {
			t.Fatalf("dependent object byte %d = %#x, want 0", i, b)
		}
	}
	if p.UsedCount() != 1 {
		t.Fatalf("used count = %d, want 1", p.UsedCount())
	}

	a.FreeDependent(obj)
	if p.UsedCount() != 0 {
		t.Fatalf("used count = %d after dependent free, want 0", p.UsedCount())
	}
	if hooks.invalid.Load() != 0 {
		t.Fatalf("invalid hook fired %d times, want 0", hooks.invalid.Load())
	}
}

func TestAdapter_FakeWiring(t *testing.T) {
	alloc := &fake.FakeAllocator{SlotSize: 256}
	a, err := NewRuntimeAdapter(alloc, 256)
	if err != nil {
		t.Fatalf("NewRuntimeAdapter failed: %v", err)
	}

	payload := a.Allocate(32)
	a.Free(payload)
	if acq, rel := alloc.Counts(); acq != 1 || rel != 1 {
		t.Fatalf("fake saw %d acquires / %d releases, want 1/1", acq, rel)
	}
	if a.Owns(payload) {
		t.Error("Owns must be false for allocators without membership")
	}
}
