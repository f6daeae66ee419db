// File: pool/default.go
// License: Apache-2.0

package pool

import "sync"

var (
	defaultOnce sync.Once
	defaultPool *StaticPool
)

// Default returns the process-wide pool so all integration points share
// one slot arena instead of fragmenting preallocated memory. It is built
// from DefaultConfig on first use and lives for the process duration.
// Construction failure is fatal: the pool cannot exist partially
// initialized.
func Default() *StaticPool {
	defaultOnce.Do(func() {
		p, err := New(DefaultConfig())
		if err != nil {
			panic(err)
		}
		defaultPool = p
	})
	return defaultPool
}
