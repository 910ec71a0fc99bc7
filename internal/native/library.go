package native

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink/logging"
)

// PathEnv names the environment variable that prepends a directory to the
// library search order, matching how the SDK's own tooling locates builds.
const PathEnv = "WAVELINK_LIB_PATH"

var (
	// ErrLibraryNotFound reports that no candidate shared library resolved.
	// Unrecoverable; initialization must abort.
	ErrLibraryNotFound = errors.New("native: libwavelink not found")

	// ErrMissingSymbol reports an entry point absent from the loaded
	// library, usually an SDK/bridge version skew.
	ErrMissingSymbol = errors.New("native: missing symbol")

	// ErrClosed reports an invoke against an unloaded library.
	ErrClosed = errors.New("native: library closed")
)

const installGuidance = "libwavelink could not be loaded. Install the WaveLink SDK and make sure " +
	"the shared library is on the loader path, or point " + PathEnv + " at the directory that " +
	"contains it. Manual installation instructions: https://developer.wavelink-audio.com/sdk/install"

// LoadOptions controls library resolution and diagnostics.
type LoadOptions struct {
	// Paths are explicit files or directories tried before the default
	// candidates, in order.
	Paths []string

	// Names are extra bare library names appended to the platform defaults.
	Names []string

	// Trace starts the gate with per-call logging enabled.
	Trace bool

	// Logger receives trace lines. Nil binds the diagnostic default.
	Logger logging.Logger

	// ErrOut receives the load-failure guidance. Nil binds os.Stderr.
	ErrOut io.Writer
}

// Library is a loaded libwavelink image together with its resolved entry
// points and the gate all calls go through.
type Library struct {
	handle uintptr
	path   string
	gate   *Gate
	addrs  map[string]uintptr
}

// Load attempts each candidate in order and resolves every registered entry
// point eagerly. On total resolution failure it writes installation guidance
// to the error stream and returns an error wrapping ErrLibraryNotFound.
func Load(opts LoadOptions) (*Library, error) {
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	var handle uintptr
	var loaded string
	for _, cand := range candidates(opts) {
		h, err := loadLibrary(cand)
		if err != nil {
			continue
		}
		handle, loaded = h, cand
		break
	}
	if handle == 0 {
		fmt.Fprintln(errOut, installGuidance)
		return nil, fmt.Errorf("%w: tried %v", ErrLibraryNotFound, candidates(opts))
	}

	lib := &Library{
		handle: handle,
		path:   loaded,
		gate:   NewGate(opts.Logger),
		addrs:  make(map[string]uintptr),
	}
	lib.gate.SetTrace(opts.Trace)

	for _, spec := range Specs() {
		addr, err := loadSymbol(handle, spec.Symbol)
		if err != nil || addr == 0 {
			_ = closeLibrary(handle)
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingSymbol, spec.Symbol, loaded)
		}
		lib.addrs[spec.Name] = addr
	}
	return lib, nil
}

// candidates builds the ordered resolution list: WAVELINK_LIB_PATH first,
// then explicit options, then platform defaults plus extra names.
func candidates(opts LoadOptions) []string {
	names := append(platformNames(), opts.Names...)

	var out []string
	if dir := os.Getenv(PathEnv); dir != "" {
		for _, name := range names {
			out = append(out, filepath.Join(dir, name))
		}
	}
	for _, p := range opts.Paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			for _, name := range names {
				out = append(out, filepath.Join(p, name))
			}
			continue
		}
		out = append(out, p)
	}
	return append(out, names...)
}

// Gate exposes the library's call gate.
func (l *Library) Gate() *Gate { return l.gate }

// SetTrace toggles per-call diagnostic logging on the gate.
func (l *Library) SetTrace(on bool) { l.gate.SetTrace(on) }

// Path returns the candidate that resolved.
func (l *Library) Path() string { return l.path }

// Invoke performs one native call under the gate. Arguments must already be
// marshalled to machine words; caller is the originating source location
// used by the trace line.
func (l *Library) Invoke(spec *CallSpec, caller string, args ...uintptr) (uintptr, error) {
	if l.handle == 0 {
		return 0, ErrClosed
	}
	addr, ok := l.addrs[spec.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingSymbol, spec.Symbol)
	}
	res := l.gate.Do(spec.Symbol, caller, func() uintptr {
		r, _, _ := purego.SyscallN(addr, args...)
		return r
	})
	return res, nil
}

// Close unloads the library. Idempotent.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	l.addrs = nil
	return err
}

// GoString copies a NUL-terminated library-owned string into Go memory.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var out []byte
	for i := uintptr(0); ; i++ {
		c := *(*byte)(unsafe.Pointer(ptr + i))
		if c == 0 {
			break
		}
		out = append(out, c)
	}
	return string(out)
}
