// Package wavelink exposes a Go API over the libwavelink media-service SDK.
//
// The SDK is a pre-built shared library that is not reentrant: the bridge
// serializes every native call through one gate, manages the SDK's
// refcounted handles with exactly-once release semantics, classifies
// wl_error statuses into values or errors, and runs the output-buffer
// protocol for entry points that write variable-length text.
//
// Operations are available two ways with identical syntax: as methods on a
// Lib instance, and as package-level functions against the shared default
// installed by Init. Construct a Lib over a custom Invoker to substitute
// the native layer in tests.
package wavelink
