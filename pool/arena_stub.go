//go:build !linux

// File: pool/arena_stub.go
// License: Apache-2.0
//
// Heap-backed arena for platforms without the mmap path. The region is a
// single long-lived allocation; alignment is handled by the pool's
// align-up of the base offset.

package pool

type heapArena struct{}

func newArenaAllocator() arenaAllocator { return heapArena{} }

func (heapArena) alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapArena) free([]byte) error { return nil }
