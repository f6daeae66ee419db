// File: pool/config.go
// License: Apache-2.0
//
// Construction-time configuration for StaticPool. The pool never resizes
// or reconfigures after New, so all knobs live here.

package pool

import (
	"github.com/ApexAI/static-exception/api"
)

// Default sizing, chosen for the exception-payload use case: enough slots
// for deep per-thread nesting across many threads, each slot large enough
// for a header-prefixed payload.
const (
	DefaultCapacity  = 8192
	DefaultSlotSize  = 1024
	DefaultAlignment = 8
)

// Config controls a StaticPool at construction.
type Config struct {
	// Capacity is the number of slots. Fixed for the pool lifetime.
	Capacity int

	// SlotSize is the maximum number of bytes servable per request.
	SlotSize int

	// Alignment of each slot's backing buffer. Must be a power of two.
	Alignment int

	// Hooks is the failure policy. Nil selects TerminateHooks.
	Hooks api.Hooks

	// Tracer, when non-nil, records policy-hook trips. Never invoked on
	// the success path.
	Tracer api.PoolTracer
}

// DefaultConfig returns the process defaults with terminate-on-failure
// policy.
func DefaultConfig() Config {
	return Config{
		Capacity:  DefaultCapacity,
		SlotSize:  DefaultSlotSize,
		Alignment: DefaultAlignment,
	}
}

// withDefaults fills zero fields without touching explicit values.
func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.SlotSize == 0 {
		c.SlotSize = DefaultSlotSize
	}
	if c.Alignment == 0 {
		c.Alignment = DefaultAlignment
	}
	if c.Hooks == nil {
		c.Hooks = TerminateHooks{}
	}
	return c
}

// Validate rejects configurations the pool cannot honor.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "pool capacity must be positive").
			WithContext("capacity", c.Capacity)
	}
	if c.SlotSize <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "slot size must be positive").
			WithContext("slot_size", c.SlotSize)
	}
	if c.Alignment <= 0 || c.Alignment&(c.Alignment-1) != 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "alignment must be a power of two").
			WithContext("alignment", c.Alignment)
	}
	return nil
}
