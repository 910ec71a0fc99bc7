package wavelink_test

import (
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink"
)

// stubInvoker substitutes the native layer. Handlers are keyed by
// normalized entry-point name; unhandled calls return zero.
type stubInvoker struct {
	mu       sync.Mutex
	handlers map[string]func(args []uintptr) uintptr
	calls    []stubCall
	closed   bool
}

type stubCall struct {
	name   string
	caller string
	args   []uintptr
}

func newStub() *stubInvoker {
	return &stubInvoker{handlers: map[string]func([]uintptr) uintptr{}}
}

func (s *stubInvoker) on(name string, fn func(args []uintptr) uintptr) {
	s.handlers[name] = fn
}

func (s *stubInvoker) returns(name string, v uintptr) {
	s.on(name, func([]uintptr) uintptr { return v })
}

func (s *stubInvoker) Invoke(spec *wavelink.CallSpec, caller string, args ...uintptr) (uintptr, error) {
	s.mu.Lock()
	s.calls = append(s.calls, stubCall{name: spec.Name, caller: caller, args: append([]uintptr(nil), args...)})
	fn := s.handlers[spec.Name]
	s.mu.Unlock()
	if fn == nil {
		return 0, nil
	}
	return fn(args), nil
}

func (s *stubInvoker) SetTrace(bool) {}

func (s *stubInvoker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *stubInvoker) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (s *stubInvoker) last(name string) (stubCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.calls) - 1; i >= 0; i-- {
		if s.calls[i].name == name {
			return s.calls[i], true
		}
	}
	return stubCall{}, false
}

// bufOf reinterprets a (pointer, size) argument pair as the scratch buffer
// the bridge handed to the native call.
func bufOf(args []uintptr, ptrIdx, sizeIdx int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(args[ptrIdx])), int(args[sizeIdx]))
}

// byteWord returns b's base address as a machine word, standing in for a
// library-owned string return.
func byteWord(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func TestCheckedCallRaisesOnFatalStatus(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	stub.returns("session_process_events", uintptr(wavelink.StatusNetworkDisabled))
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)
	require.NotNil(t, session)

	_, err = lib.CallChecked("session_process_events", session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NETWORK_DISABLED")

	var statusErr *wavelink.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, wavelink.StatusNetworkDisabled, statusErr.Status)
}

func TestCheckedCallPassesBenignStatuses(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)

	stub.returns("session_process_events", uintptr(wavelink.StatusOK))
	v, err := lib.CallChecked("session_process_events", session)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusOK, v)

	stub.returns("session_process_events", uintptr(wavelink.StatusIsLoading))
	v, err = lib.CallChecked("session_process_events", session)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusIsLoading, v)
}

func TestCheckedCallRaisesOnUnrecognizedStatus(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	stub.returns("session_logout", 4095)
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)

	_, err = lib.CallChecked("session_logout", session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNRECOGNIZED(4095)")
}

func TestCheckedCallPassesNonStatusResultsVerbatim(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	// The value collides with NETWORK_DISABLED's code; a plain return must
	// never be mistaken for a status.
	stub.returns("session_connection_state", uintptr(wavelink.StatusNetworkDisabled))
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)

	v, err := lib.CallChecked("session_connection_state", session)
	require.NoError(t, err)
	assert.Equal(t, int64(wavelink.StatusNetworkDisabled), v)
}

func TestCreatorHandleSkipsRetain(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xB2)
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)
	assert.Equal(t, wavelink.Owned, session.Owner())
	assert.Zero(t, stub.count("session_add_ref"))
}

func TestBorrowedHandleRetainsBeforeWrapping(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	stub.returns("link_as_track", 0xD4)
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)
	assert.Equal(t, wavelink.Owned, link.Owner())

	track, err := lib.LinkAsTrack(link)
	require.NoError(t, err)
	require.NotNil(t, track)
	assert.Equal(t, wavelink.Borrowed, track.Owner())

	require.Equal(t, 1, stub.count("track_add_ref"))
	retain, ok := stub.last("track_add_ref")
	require.True(t, ok)
	assert.Equal(t, []uintptr{0xD4}, retain.args)
}

func TestNullHandleReturnsNil(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0)
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("not a uri")
	require.NoError(t, err)
	assert.Nil(t, link)
	assert.Zero(t, stub.count("link_add_ref"))
}

func TestHandleReleaseRunsExactlyOnce(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(link.Close)
	}
	require.NoError(t, eg.Wait())
	require.NoError(t, link.Close())

	assert.Equal(t, 1, stub.count("link_release"))
	assert.True(t, link.Closed())

	_, err = link.Pointer()
	assert.ErrorIs(t, err, wavelink.ErrHandleReleased)
}

func TestReleasedHandleRejectedAsArgument(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)
	require.NoError(t, link.Close())

	_, err = lib.LinkType(link)
	assert.ErrorIs(t, err, wavelink.ErrHandleReleased)
	assert.Zero(t, stub.count("link_type"))
}

func TestStringArgumentsArriveNulTerminated(t *testing.T) {
	stub := newStub()
	var seen string
	stub.on("link_create_from_string", func(args []uintptr) uintptr {
		b := unsafe.Slice((*byte)(unsafe.Pointer(args[0])), 32)
		for i, c := range b {
			if c == 0 {
				seen = string(b[:i])
				break
			}
		}
		return 0xC3
	})
	lib := wavelink.NewLib(stub)

	_, err := lib.LinkFromString("wavelink:album:xyz")
	require.NoError(t, err)
	assert.Equal(t, "wavelink:album:xyz", seen)
}

func TestTraceCallerPointsAtUserCode(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	lib := wavelink.NewLib(stub)

	_, err := lib.CreateSession("app-key")
	require.NoError(t, err)

	call, ok := stub.last("session_create")
	require.True(t, ok)
	assert.Contains(t, call.caller, "dispatch_test.go:")
}

func TestDispatchArgumentValidation(t *testing.T) {
	lib := wavelink.NewLib(newStub())

	_, err := lib.Call("no_such_entry_point")
	assert.ErrorIs(t, err, wavelink.ErrUnknownEntryPoint)

	_, err = lib.Call("link_type")
	assert.ErrorIs(t, err, wavelink.ErrBadArgument)

	_, err = lib.Call("link_create_from_string", 42)
	assert.ErrorIs(t, err, wavelink.ErrBadArgument)

	_, err = lib.Call("link_type", nil)
	assert.NoError(t, err) // null pointers are the SDK's problem, not a type error
}

func TestStringBufferRoundTrip(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	stub.returns("link_as_track", 0xD4)
	stub.returns("track_title_length", 10)
	stub.on("track_title", func(args []uintptr) uintptr {
		buf := bufOf(args, 1, 2)
		copy(buf, "Golden Air\x00")
		return uintptr(wavelink.StatusOK)
	})
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)
	track, err := lib.LinkAsTrack(link)
	require.NoError(t, err)

	title, status, err := lib.TrackTitle(track)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusOK, status)
	assert.Equal(t, "Golden Air", title)
}

func TestStringBufferDiscardsPartialTextOnFailure(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	stub.returns("link_as_track", 0xD4)
	stub.returns("track_title_length", 10)
	stub.on("track_title", func(args []uintptr) uintptr {
		buf := bufOf(args, 1, 2)
		copy(buf, "Golde") // partial write, then failure
		return uintptr(wavelink.StatusIsLoading)
	})
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)
	track, err := lib.LinkAsTrack(link)
	require.NoError(t, err)

	title, status, err := lib.TrackTitle(track)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusIsLoading, status)
	assert.Equal(t, "", title)
}

func TestStringBufferZeroLengthSkipsFillCall(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	stub.returns("session_display_name_length", 0)
	lib := wavelink.NewLib(stub)

	session, err := lib.CreateSession("app-key")
	require.NoError(t, err)

	name, status, err := lib.DisplayName(session)
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, wavelink.StatusOK, status)
	assert.Zero(t, stub.count("session_display_name"))
}

func TestLibraryOwnedStringReturn(t *testing.T) {
	msg := []byte("Resource is loading\x00")
	stub := newStub()
	stub.returns("error_message", byteWord(msg))
	lib := wavelink.NewLib(stub)

	text, err := lib.ErrorMessage(wavelink.StatusIsLoading)
	require.NoError(t, err)
	assert.Equal(t, "Resource is loading", text)
}

func TestCloseIsIdempotentInEffect(t *testing.T) {
	stub := newStub()
	lib := wavelink.NewLib(stub)

	require.NoError(t, lib.Close())
	assert.True(t, stub.closed)
	assert.ErrorIs(t, lib.Close(), wavelink.ErrLibraryClosed)

	_, err := lib.Call("build_id")
	assert.ErrorIs(t, err, wavelink.ErrLibraryClosed)
}

func TestReleaseAfterLibraryCloseDoesNotInvoke(t *testing.T) {
	stub := newStub()
	stub.returns("link_create_from_string", 0xC3)
	lib := wavelink.NewLib(stub)

	link, err := lib.LinkFromString("wavelink:track:abc")
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	err = link.Close()
	assert.ErrorIs(t, err, wavelink.ErrLibraryClosed)
	assert.Zero(t, stub.count("link_release"))
}
