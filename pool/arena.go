// File: pool/arena.go
// License: Apache-2.0
//
// Platform-neutral arena reservation. Concrete allocators are selected at
// build time through platform-specific files.

package pool

// arenaAllocator reserves and releases the single backing region of a
// pool. alloc is called exactly once per pool, free at most once with
// the identical slice.
type arenaAllocator interface {
	alloc(size int) ([]byte, error)
	free(buf []byte) error
}

// alignUp rounds n up to the next multiple of align (power of two).
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
