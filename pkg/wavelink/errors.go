package wavelink

import (
	"errors"
	"fmt"

	"github.com/wavelink-audio/wavelink-go/internal/native"
)

var (
	// ErrLibraryNotFound indicates no candidate shared library resolved.
	// Startup cannot proceed past this.
	ErrLibraryNotFound = native.ErrLibraryNotFound

	// ErrLibraryClosed indicates the library handle was already closed.
	ErrLibraryClosed = errors.New("wavelink: library closed")

	// ErrNotInitialized indicates the shared default library was never
	// opened; see Init and SetDefault.
	ErrNotInitialized = errors.New("wavelink: default library not initialized")

	// ErrUnknownEntryPoint indicates a call name with no registered spec.
	ErrUnknownEntryPoint = errors.New("wavelink: unknown entry point")

	// ErrHandleReleased indicates a managed handle was used after release.
	ErrHandleReleased = errors.New("wavelink: handle released")

	// ErrNilHandle indicates a nil managed handle was passed as an argument.
	ErrNilHandle = errors.New("wavelink: nil handle")

	// ErrBadArgument indicates an argument did not match its declared
	// parameter type tag.
	ErrBadArgument = errors.New("wavelink: bad argument")
)

// Error wraps an underlying error with the failing operation.
type Error struct {
	Op  string // entry-point or operation name
	Err error  // underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("wavelink.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error.
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

// StatusError is raised by error-checked invocation for any status outside
// {OK, IS_LOADING}. The message embeds the canonical UPPER_SNAKE name of
// the status symbol.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wavelink: native call failed: %s", e.Status.Canonical())
}
