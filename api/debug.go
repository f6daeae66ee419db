// File: api/debug.go
// License: Apache-2.0
//
// Runtime introspection contract for diagnostics.

package api

// Debug exposes runtime introspection over registered probes.
type Debug interface {
	// DumpState emits a snapshot of component state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a new debug probe.
	RegisterProbe(name string, fn func() any)
}
