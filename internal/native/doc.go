// Package native contains all purego bindings to the libwavelink shared
// library.
//
// # Design Principles
//
// 1. Isolation: ALL dynamic-loading and raw-call code lives in this package.
//    No other package should import purego. This keeps the unsafe surface in
//    one place and makes the bridge easier to audit.
//
// 2. Table-driven dispatch: every entry point is described by a static
//    CallSpec registered at init; one generic invoke path serves all of
//    them. There is no per-entry-point binding code.
//
// 3. Serialization: libwavelink is not reentrant. Every call, including the
//    refcount releases issued by finalizers, goes through one Gate that
//    holds a mutex around exactly one native call at a time.
//
// 4. Scoped buffers: output-buffer calls borrow pooled scratch regions that
//    never escape their scope. Partial buffer content from a failed call is
//    never surfaced.
//
// # Threading
//
// At most one native call is in flight process-wide. No fairness or
// ordering is promised between callers beyond mutual exclusion, and a
// blocked native call blocks its caller; there is no cancellation.
package native
