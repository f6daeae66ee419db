// File: control/trace.go
// License: Apache-2.0
//
// Bounded journal of pool policy events.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/ApexAI/static-exception/api"
)

// TraceEvent is one recorded policy-hook trip.
type TraceEvent struct {
	Kind string
	Size int
	At   time.Time
}

// TraceLog implements api.PoolTracer as a bounded FIFO journal: at
// capacity the oldest event is evicted. The underlying queue is not
// thread-safe, so a mutex guards all access; this is acceptable because
// pools record events only when a policy hook trips, never on the
// allocation hot path.
type TraceLog struct {
	mu    sync.Mutex
	limit int
	q     *queue.Queue
}

var _ api.PoolTracer = (*TraceLog)(nil)

// NewTraceLog creates a journal keeping at most limit events.
func NewTraceLog(limit int) *TraceLog {
	if limit <= 0 {
		limit = 64
	}
	return &TraceLog{limit: limit, q: queue.New()}
}

// RecordEvent appends an event, evicting the oldest at capacity.
func (t *TraceLog) RecordEvent(kind string, size int) {
	t.mu.Lock()
	if t.q.Length() == t.limit {
		t.q.Remove()
	}
	t.q.Add(TraceEvent{Kind: kind, Size: size, At: time.Now()})
	t.mu.Unlock()
}

// Events returns a snapshot of the journal, oldest first.
func (t *TraceLog) Events() []TraceEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceEvent, 0, t.q.Length())
	for i := 0; i < t.q.Length(); i++ {
		out = append(out, t.q.Get(i).(TraceEvent))
	}
	return out
}

// Len reports the number of retained events.
func (t *TraceLog) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.Length()
}
