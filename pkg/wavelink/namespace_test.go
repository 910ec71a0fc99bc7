package wavelink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelink-audio/wavelink-go/pkg/wavelink"
)

// withDefault installs a stub-backed Lib as the shared default for the
// duration of the test.
func withDefault(t *testing.T, stub *stubInvoker) {
	t.Helper()
	prev := wavelink.Default()
	wavelink.SetDefault(wavelink.NewLib(stub))
	t.Cleanup(func() { wavelink.SetDefault(prev) })
}

func TestNamespaceRequiresInit(t *testing.T) {
	prev := wavelink.Default()
	t.Cleanup(func() { wavelink.SetDefault(prev) })
	wavelink.SetDefault(nil)

	_, err := wavelink.Call("build_id")
	assert.ErrorIs(t, err, wavelink.ErrNotInitialized)

	_, err = wavelink.CreateSession("app-key")
	assert.ErrorIs(t, err, wavelink.ErrNotInitialized)

	_, _, err = wavelink.TrackTitle(nil)
	assert.ErrorIs(t, err, wavelink.ErrNotInitialized)
}

func TestNamespaceMirrorsInstanceSyntax(t *testing.T) {
	stub := newStub()
	stub.returns("session_create", 0xA1)
	stub.returns("session_process_events", uintptr(wavelink.StatusOK))
	withDefault(t, stub)

	session, err := wavelink.CreateSession("app-key")
	require.NoError(t, err)
	require.NotNil(t, session)

	status, err := wavelink.ProcessEvents(session)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusOK, status)

	v, err := wavelink.CallChecked("session_process_events", session)
	require.NoError(t, err)
	assert.Equal(t, wavelink.StatusOK, v)
}

func TestNamespaceErrorMessage(t *testing.T) {
	stub := newStub()
	msg := []byte("No such user\x00")
	stub.returns("error_message", byteWord(msg))
	withDefault(t, stub)

	text, err := wavelink.ErrorMessage(wavelink.StatusNoSuchUser)
	require.NoError(t, err)
	assert.Equal(t, "No such user", text)
}
