package native

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// TypeTag describes how one parameter crosses the native boundary. Tags are
// static metadata consumed by the generic dispatcher; they never change after
// registration.
type TypeTag uint8

const (
	// TypeInt is a platform int argument, passed in a register.
	TypeInt TypeTag = iota
	// TypeBool is passed as 0 or 1.
	TypeBool
	// TypeString is a NUL-terminated char* the bridge allocates per call.
	TypeString
	// TypePointer is a raw native pointer: a managed handle or the base of a
	// caller-owned buffer.
	TypePointer
	// TypeSize is a byte count accompanying a buffer pointer.
	TypeSize
)

// ReturnKind classifies what the raw native return value means.
type ReturnKind uint8

const (
	// ReturnPlain is an ordinary integer result with no bridge semantics.
	ReturnPlain ReturnKind = iota
	// ReturnHandle is an opaque refcounted pointer owned per the SDK's
	// retain/release contract.
	ReturnHandle
	// ReturnStatus is a wl_error value.
	ReturnStatus
	// ReturnString is a const char* whose storage the library owns.
	ReturnString
)

// SymbolPrefix is the prefix every libwavelink entry point carries.
const SymbolPrefix = "wl_"

// CallSpec is the static descriptor for one native entry point. Specs are
// registered once, during package init, and are immutable afterwards.
type CallSpec struct {
	// Name is the normalized entry-point name with SymbolPrefix stripped.
	Name string

	// Symbol is the full exported symbol, e.g. "wl_session_create".
	Symbol string

	// Params are the ordered argument type tags.
	Params []TypeTag

	// Return classifies the raw result.
	Return ReturnKind

	// Kind names the resource kind for ReturnHandle specs ("session",
	// "track", ...). The kind selects the wl_<kind>_add_ref and
	// wl_<kind>_release entry points used by the ownership layer.
	Kind string

	// Creator records whether the entry point transfers ownership of its
	// returned handle. Computed from the name at registration time.
	Creator bool

	// Buffer marks entry points that write variable-length output into a
	// caller-owned buffer passed as a TypePointer/TypeSize pair.
	Buffer bool
}

var (
	regMu sync.RWMutex
	reg   = map[string]*CallSpec{}
)

// Register normalizes and stores a spec. The symbol must carry SymbolPrefix
// and must not already be registered; both are programming errors, so
// Register panics. Call only from package init.
func Register(spec CallSpec) {
	if !strings.HasPrefix(spec.Symbol, SymbolPrefix) {
		panic(fmt.Sprintf("native: symbol %q lacks the %q prefix", spec.Symbol, SymbolPrefix))
	}
	spec.Name = strings.TrimPrefix(spec.Symbol, SymbolPrefix)
	spec.Creator = strings.Contains(spec.Name, "create")
	if spec.Return == ReturnHandle && spec.Kind == "" {
		panic(fmt.Sprintf("native: handle spec %q needs a resource kind", spec.Symbol))
	}

	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := reg[spec.Name]; dup {
		panic(fmt.Sprintf("native: entry point %q registered twice", spec.Name))
	}
	reg[spec.Name] = &spec
}

// Lookup returns the spec registered under the normalized name.
func Lookup(name string) (*CallSpec, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	spec, ok := reg[name]
	return spec, ok
}

// Specs returns all registered specs sorted by name. The loader walks this
// to resolve symbols eagerly at startup.
func Specs() []*CallSpec {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]*CallSpec, 0, len(reg))
	for _, spec := range reg {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
