// File: control/metrics.go
// License: Apache-2.0
//
// Runtime metrics collector for system-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/ApexAI/static-exception/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RecordPoolStats explodes a pool stats snapshot into prefixed counters.
func (mr *MetricsRegistry) RecordPoolStats(prefix string, s api.PoolStats) {
	mr.mu.Lock()
	mr.metrics[prefix+".capacity"] = s.Capacity
	mr.metrics[prefix+".slot_size"] = s.SlotSize
	mr.metrics[prefix+".acquired"] = s.TotalAcquired
	mr.metrics[prefix+".released"] = s.TotalReleased
	mr.metrics[prefix+".in_use"] = s.InUse
	mr.metrics[prefix+".oversized"] = s.Oversized
	mr.metrics[prefix+".exhausted"] = s.Exhausted
	mr.metrics[prefix+".invalid_releases"] = s.InvalidReleases
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns a copy of the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated reports when the registry last changed.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
