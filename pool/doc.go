// Package pool implements a deterministic, allocation-free fixed-slot
// memory pool for a bounded number of concurrently in-flight objects
// shared across threads.
//
// All storage is reserved once at construction as a single aligned arena.
// Acquire and Release are lock-free: occupancy is a per-slot atomic flag,
// contention is spread by per-P probe start offsets, and the three failure
// conditions (oversized request, exhaustion, invalid release) are delegated
// to injected policy hooks that terminate the process by default.
// See staticpool.go for the core and hooks.go for the failure policy.
package pool
