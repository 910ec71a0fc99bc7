package wavelink

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/wavelink-audio/wavelink-go/internal/native"
)

// Call performs raw invocation of a registered entry point: the result is
// returned as-is with no status classification. Handle-returning entry
// points yield a *Managed (nil for a null native pointer), status returns
// yield Status, string returns yield string, and everything else yields
// int64.
func (l *Lib) Call(name string, args ...any) (any, error) {
	return l.call(name, args...)
}

// CallChecked performs error-checked invocation: the raw result is passed
// through Check, so any status outside {OK, IS_LOADING} comes back as a
// StatusError instead of a value.
func (l *Lib) CallChecked(name string, args ...any) (any, error) {
	v, err := l.call(name, args...)
	if err != nil {
		return nil, err
	}
	return Check(v)
}

// call is the one generic dispatch path: spec lookup, argument marshalling,
// gated invocation, then return-value interpretation.
func (l *Lib) call(name string, args ...any) (any, error) {
	spec, ok := native.Lookup(name)
	if !ok {
		return nil, &Error{Op: name, Err: ErrUnknownEntryPoint}
	}
	if len(args) != len(spec.Params) {
		return nil, errorf(name, "%w: got %d arguments, want %d", ErrBadArgument, len(args), len(spec.Params))
	}

	raw := make([]uintptr, len(args))
	pins := make([]any, 0, len(args))
	for i, tag := range spec.Params {
		word, pin, err := marshalArg(tag, args[i])
		if err != nil {
			return nil, &Error{Op: name, Err: err}
		}
		raw[i] = word
		if pin != nil {
			pins = append(pins, pin)
		}
	}

	caller := callOrigin()
	res, err := l.invoke(spec, caller, raw...)
	runtime.KeepAlive(pins)
	if err != nil {
		return nil, &Error{Op: name, Err: err}
	}

	switch spec.Return {
	case native.ReturnStatus:
		return Status(int32(res)), nil
	case native.ReturnHandle:
		m, werr := l.wrap(res, spec, caller)
		if werr != nil {
			return nil, werr
		}
		if m == nil {
			return nil, nil
		}
		return m, nil
	case native.ReturnString:
		return native.GoString(res), nil
	default:
		return int64(res), nil
	}
}

// marshalArg converts one argument to a machine word per its type tag. The
// second return value, when non-nil, is backing storage that must stay
// alive until the native call returns.
func marshalArg(tag native.TypeTag, v any) (uintptr, any, error) {
	switch tag {
	case native.TypeInt, native.TypeSize:
		switch n := v.(type) {
		case int:
			return uintptr(n), nil, nil
		case int32:
			return uintptr(n), nil, nil
		case int64:
			return uintptr(n), nil, nil
		case uint:
			return uintptr(n), nil, nil
		case uint32:
			return uintptr(n), nil, nil
		case uint64:
			return uintptr(n), nil, nil
		case Status:
			return uintptr(int32(n)), nil, nil
		}
	case native.TypeBool:
		if b, ok := v.(bool); ok {
			if b {
				return 1, nil, nil
			}
			return 0, nil, nil
		}
	case native.TypeString:
		if s, ok := v.(string); ok {
			// NUL-terminated copy; pinned until the call returns.
			b := make([]byte, len(s)+1)
			copy(b, s)
			return uintptr(unsafe.Pointer(&b[0])), b, nil
		}
	case native.TypePointer:
		switch p := v.(type) {
		case nil:
			return 0, nil, nil
		case *Managed:
			word, err := p.Pointer()
			return word, nil, err
		case []byte:
			if len(p) == 0 {
				return 0, nil, nil
			}
			return uintptr(unsafe.Pointer(&p[0])), p, nil
		case uintptr:
			return p, nil, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: %T does not fit parameter tag %d", ErrBadArgument, v, tag)
}

// callOrigin walks up the stack to the first frame outside the bridge's own
// packages and renders it as file:line. That frame is the user call site
// the trace line attributes the native call to, regardless of how many
// dispatch or buffer-protocol frames sit in between.
func callOrigin() string {
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		f, more := frames.Next()
		if f.File != "" && !bridgeFrame(f.Function) {
			return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// bridgeFrame matches functions in this package and the bindings layer.
// The trailing dot keeps sibling packages such as the external test package
// from matching.
func bridgeFrame(fn string) bool {
	return strings.Contains(fn, "/pkg/wavelink.") ||
		strings.Contains(fn, "/internal/native.")
}
