// File: pool/hooks.go
// License: Apache-2.0
//
// Default failure policy. Oversized requests, exhaustion and invalid
// releases are configuration or usage errors in this pool's operating
// context, not transient conditions, and they typically surface on a path
// that is itself responsible for signaling errors. Continuing silently
// risks worse inconsistency, so the default is to stop the process.

package pool

import (
	"fmt"
	"os"

	"github.com/ApexAI/static-exception/api"
)

// Event kinds reported to an api.PoolTracer.
const (
	EventOversized      = "oversized"
	EventExhausted      = "exhausted"
	EventInvalidRelease = "invalid_release"
)

// TerminateHooks is the default api.Hooks implementation: every condition
// writes one diagnostic line to stderr and exits the process. No method
// returns. Deployments that want graceful degradation inject custom hooks
// via Config, at the cost of the allocation-free guarantee on that path.
type TerminateHooks struct{}

var _ api.Hooks = TerminateHooks{}

func (TerminateHooks) OnOversized(requested int) []byte {
	fatalf("static-exception: request of %d bytes exceeds the pool slot size", requested)
	return nil
}

func (TerminateHooks) OnExhausted(requested int) []byte {
	fatalf("static-exception: pool exhausted serving a %d byte request", requested)
	return nil
}

func (TerminateHooks) OnInvalidRelease() {
	fatalf("static-exception: release of memory not owned by the pool")
}

// fatalf stops the process with no unwinding. A variable so tests of the
// default policy can intercept it.
var fatalf = func(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
