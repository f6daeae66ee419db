// File: adapters/runtime_adapter.go
// License: Apache-2.0
//
// Bridges a host runtime's object-lifetime calls onto an api.Allocator.
// Every allocation reserves HeaderSize bytes of runtime bookkeeping ahead
// of the payload the runtime's caller sees; Free undoes the shift before
// handing the slot back.

package adapters

import (
	"unsafe"

	"github.com/ApexAI/static-exception/api"
)

// RuntimeAdapter adapts allocate/free calls that expect header-prefixed
// storage. It is stateless beyond its configuration and safe for
// concurrent use whenever the underlying allocator is.
type RuntimeAdapter struct {
	alloc    api.Allocator
	slotSize int
}

// NewRuntimeAdapter verifies the header layout against the allocator's
// slot size. slotSize is the maximum request the allocator serves; the
// header must leave payload room inside it.
func NewRuntimeAdapter(alloc api.Allocator, slotSize int) (*RuntimeAdapter, error) {
	if alloc == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "nil allocator")
	}
	if slotSize <= HeaderSize {
		return nil, api.NewError(api.ErrCodeHeaderTooLarge, "header leaves no payload room").
			WithContext("header_size", HeaderSize).
			WithContext("slot_size", slotSize)
	}
	return &RuntimeAdapter{alloc: alloc, slotSize: slotSize}, nil
}

// MaxPayload returns the largest payload Allocate can serve.
func (a *RuntimeAdapter) MaxPayload() int { return a.slotSize - HeaderSize }

// Allocate acquires storage for size payload bytes plus the header,
// zeroes the header region and returns the payload view. Whatever memory
// the acquire produced is treated uniformly, so a custom fallback hook
// that returns heap memory gets the same header treatment pool slots do.
func (a *RuntimeAdapter) Allocate(size int) []byte {
	buf := a.alloc.Acquire(size + HeaderSize)
	if len(buf) < HeaderSize {
		return nil
	}
	clear(buf[:HeaderSize])
	return buf[HeaderSize:]
}

// Free releases the slot backing payload. payload must be exactly the
// slice returned by Allocate; anything else reaches the allocator's
// invalid-release policy.
func (a *RuntimeAdapter) Free(payload []byte) {
	a.alloc.Release(a.rebase(payload))
}

// AllocateDependent acquires storage for a dependent object, which is all
// header: a fixed-size record referring to a primary object.
func (a *RuntimeAdapter) AllocateDependent() []byte {
	buf := a.alloc.Acquire(HeaderSize)
	if len(buf) < HeaderSize {
		return nil
	}
	clear(buf[:HeaderSize])
	return buf[:HeaderSize]
}

// FreeDependent releases storage returned by AllocateDependent.
func (a *RuntimeAdapter) FreeDependent(obj []byte) {
	a.alloc.Release(obj)
}

// Owns reports whether payload is backed by the adapter's allocator,
// adjusting for the header before asking. Requires an allocator exposing
// membership (the static pool does); otherwise false.
func (a *RuntimeAdapter) Owns(payload []byte) bool {
	c, ok := a.alloc.(interface{ Contains([]byte) bool })
	if !ok {
		return false
	}
	return c.Contains(a.rebase(payload))
}

// rebase reconstructs the header-prefixed slot slice from a payload view.
func (a *RuntimeAdapter) rebase(payload []byte) []byte {
	if cap(payload) == 0 {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(payload))
	return unsafe.Slice((*byte)(unsafe.Add(p, -HeaderSize)), HeaderSize+len(payload))
}
