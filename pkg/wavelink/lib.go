package wavelink

import (
	"sync"

	"github.com/wavelink-audio/wavelink-go/internal/native"
)

// Invoker abstracts the loaded native library behind the dispatch machinery
// so the same call surface can be instantiated over a stub in tests. The
// production implementation is the bindings layer's Library, whose Invoke
// runs each call under the process-wide gate.
type Invoker interface {
	// Invoke performs one native call. Arguments are already marshalled to
	// machine words; caller is the originating source location used by the
	// trace line.
	Invoke(spec *CallSpec, caller string, args ...uintptr) (uintptr, error)

	// SetTrace toggles per-call diagnostic logging.
	SetTrace(on bool)

	// Close unloads the library.
	Close() error
}

// Lib is one instance of the bridge: a call surface bound to an Invoker.
// All operations are available both as methods on Lib and as package-level
// functions against the shared default instance, with identical syntax.
type Lib struct {
	mu     sync.RWMutex
	inv    Invoker
	closed bool
}

// Open loads the native library per cfg and returns a bridge over it. When
// no candidate resolves, the returned error wraps ErrLibraryNotFound and
// installation guidance has been written to the error stream.
func Open(cfg Config) (*Lib, error) {
	nl, err := native.Load(cfg.loadOptions())
	if err != nil {
		return nil, err
	}
	return NewLib(nl), nil
}

// NewLib wraps an Invoker. Tests substitute stubs here without changing any
// call syntax.
func NewLib(inv Invoker) *Lib {
	return &Lib{inv: inv}
}

// SetTrace toggles per-call diagnostic logging for this instance.
func (l *Lib) SetTrace(on bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.closed {
		l.inv.SetTrace(on)
	}
}

// invoke is the single funnel every native call takes, including retains
// and releases issued by the ownership layer.
func (l *Lib) invoke(spec *CallSpec, caller string, args ...uintptr) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return 0, ErrLibraryClosed
	}
	return l.inv.Invoke(spec, caller, args...)
}

// Close releases the native library. The method is idempotent in effect,
// returning ErrLibraryClosed when called twice.
func (l *Lib) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	return l.inv.Close()
}
