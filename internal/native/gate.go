package native

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink/logging"
)

// Gate serializes every native call. libwavelink is documented safe for
// multi-threaded processes only when no two calls overlap, so one mutex
// wraps exactly one native call at a time and is never held across chained
// calls. Release calls issued by the ownership layer's finalization path go
// through the same gate, which is what prevents create/use/release races.
//
// The gate is an explicit value captured by every dispatch path rather than
// an implicit package singleton; each loaded Library owns one.
type Gate struct {
	mu sync.Mutex

	trace  atomic.Bool
	logger logging.Logger

	// depth counts in-flight native calls and exists so tests can verify
	// that it never exceeds one. maxDepth keeps the high-water mark.
	depth    atomic.Int32
	maxDepth atomic.Int32
}

// NewGate returns a gate that traces through logger when tracing is on.
// A nil logger binds to the package default diagnostic logger.
func NewGate(logger logging.Logger) *Gate {
	if logger == nil {
		logger = logging.Diagnostic()
	}
	return &Gate{logger: logger}
}

// SetTrace toggles per-call diagnostic logging. With tracing off the gate
// produces no output on any stream.
func (g *Gate) SetTrace(on bool) { g.trace.Store(on) }

// TraceEnabled reports whether per-call logging is active.
func (g *Gate) TraceEnabled() bool { return g.trace.Load() }

// Announce emits one diagnostic line for a call about to be performed:
// the call description plus the originating caller's file:line. It writes
// nothing when tracing is off.
func (g *Gate) Announce(desc, caller string) {
	if !g.trace.Load() {
		return
	}
	g.logger.Debug(context.Background(), "native call", "call", desc, "caller", caller)
}

// Do runs fn under the gate's lock and returns its raw result. desc and
// caller feed the trace line; fn must perform exactly one native call.
func (g *Gate) Do(desc, caller string, fn func() uintptr) uintptr {
	g.Announce(desc, caller)

	g.mu.Lock()
	defer g.mu.Unlock()

	d := g.depth.Add(1)
	defer g.depth.Add(-1)
	for {
		max := g.maxDepth.Load()
		if d <= max || g.maxDepth.CompareAndSwap(max, d) {
			break
		}
	}

	return fn()
}

// MaxDepth returns the highest number of concurrently in-flight native
// calls observed so far. The serialization contract keeps this at one.
func (g *Gate) MaxDepth() int32 { return g.maxDepth.Load() }
