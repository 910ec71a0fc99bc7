package wavelink

import (
	"runtime"
	"sync/atomic"

	"github.com/wavelink-audio/wavelink-go/internal/native"
)

// Owner records how a managed handle came to hold its refcount.
type Owner uint8

const (
	// Owned means the creating entry point transferred ownership; no
	// retain was issued.
	Owned Owner = iota
	// Borrowed means the bridge issued the kind's add_ref before wrapping.
	Borrowed
)

func (o Owner) String() string {
	if o == Owned {
		return "owned"
	}
	return "borrowed"
}

// Managed wraps one refcounted native handle. Exactly one release is issued
// per wrapper over its whole lifetime, whether through Close, a finalizer,
// or both racing; the decrement is routed through the call gate like every
// other native call.
type Managed struct {
	lib     *Lib
	kind    string
	owner   Owner
	release string // precomputed wl_<kind>_release spec name
	ptr     atomic.Uintptr
}

// wrap builds the managed wrapper for a pointer returned by spec. Creator
// entry points hand over an owned refcount; every other pointer return is
// borrowed and must be retained before the wrapper exists, or a release
// from another thread could invalidate it under us.
func (l *Lib) wrap(ptr uintptr, spec *CallSpec, caller string) (*Managed, error) {
	if ptr == 0 {
		return nil, nil
	}

	owner := Owned
	if !spec.Creator {
		owner = Borrowed
		retain, ok := native.Lookup(spec.Kind + "_add_ref")
		if !ok {
			return nil, errorf(spec.Name, "resource kind %q has no add_ref entry point", spec.Kind)
		}
		if _, err := l.invoke(retain, caller, ptr); err != nil {
			return nil, &Error{Op: retain.Name, Err: err}
		}
	}

	m := &Managed{
		lib:     l,
		kind:    spec.Kind,
		owner:   owner,
		release: spec.Kind + "_release",
	}
	m.ptr.Store(ptr)
	runtime.SetFinalizer(m, func(m *Managed) { _ = m.Close() })
	return m, nil
}

// Kind returns the resource kind ("session", "track", ...).
func (m *Managed) Kind() string { return m.kind }

// Owner reports whether the wrapper's refcount was owned or borrowed.
func (m *Managed) Owner() Owner { return m.owner }

// Pointer returns the raw native pointer for use as a call argument.
func (m *Managed) Pointer() (uintptr, error) {
	if m == nil {
		return 0, ErrNilHandle
	}
	p := m.ptr.Load()
	if p == 0 {
		return 0, ErrHandleReleased
	}
	return p, nil
}

// Closed reports whether the wrapper has released its handle.
func (m *Managed) Closed() bool {
	return m == nil || m.ptr.Load() == 0
}

// Close releases the native refcount. Safe to call from any goroutine and
// any number of times; the decrement runs at most once. The pointer is
// cleared before the release call is issued, so a released handle is never
// dereferenced again through this wrapper.
func (m *Managed) Close() error {
	if m == nil {
		return nil
	}
	ptr := m.ptr.Swap(0)
	if ptr == 0 {
		return nil
	}
	runtime.SetFinalizer(m, nil)

	spec, ok := native.Lookup(m.release)
	if !ok {
		return errorf(m.release, "release entry point not registered")
	}
	if _, err := m.lib.invoke(spec, "finalize "+m.kind, ptr); err != nil {
		return &Error{Op: spec.Name, Err: err}
	}
	return nil
}
