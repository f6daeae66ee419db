// Package concurrency holds the pool's low-level coordination helpers.
// Nothing here is exported outside the module.
package concurrency
