// File: fake/fakepool.go
// License: Apache-2.0

package fake

import (
	"sync"

	"github.com/ApexAI/static-exception/api"
)

// FakeAllocator is a heap-backed api.Allocator stub for testing
// collaborator wiring without a real slot arena. It records call counts
// and never terminates.
type FakeAllocator struct {
	// SlotSize caps requests when positive, mirroring the real pool's
	// whole-slot return contract.
	SlotSize int

	// Fill, when nonzero, pre-fills returned buffers so tests can
	// verify callers zero what they must.
	Fill byte

	mu       sync.Mutex
	acquires int
	releases int
}

var _ api.Allocator = (*FakeAllocator)(nil)

func (f *FakeAllocator) Acquire(size int) []byte {
	f.mu.Lock()
	f.acquires++
	f.mu.Unlock()

	if f.SlotSize > 0 && size > f.SlotSize {
		return nil
	}
	n := size
	if f.SlotSize > 0 {
		n = f.SlotSize
	}
	buf := make([]byte, n)
	if f.Fill != 0 {
		for i := range buf {
			buf[i] = f.Fill
		}
	}
	return buf
}

func (f *FakeAllocator) Release([]byte) {
	f.mu.Lock()
	f.releases++
	f.mu.Unlock()
}

// Counts returns the number of Acquire and Release calls seen.
func (f *FakeAllocator) Counts() (acquires, releases int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.acquires, f.releases
}
