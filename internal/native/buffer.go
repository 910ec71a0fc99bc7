package native

import (
	"bytes"
	"sync"
)

// Scoped scratch regions for native calls that write into caller-owned
// memory. Regions come from a pool, never escape their scope, and are
// local to the acquiring goroutine for the duration of one body call.

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// WithBuffer acquires a region of count*elemWidth bytes, zero-filled when
// zeroFill is set, and passes it to body. The region is returned to the
// pool when body returns, on every exit path. A non-positive count or
// element width means there is nothing to produce: body is never invoked
// and WithBuffer reports false, which callers must treat as an empty
// result rather than a failure.
func WithBuffer(elemWidth, count int, zeroFill bool, body func(buf []byte)) bool {
	if elemWidth <= 0 || count <= 0 {
		return false
	}
	size := elemWidth * count

	bp := scratchPool.Get().(*[]byte)
	defer scratchPool.Put(bp)
	if cap(*bp) < size {
		*bp = make([]byte, size)
	}
	buf := (*bp)[:size]
	if zeroFill {
		clear(buf)
	}

	body(buf)
	return true
}

// WithStringBuffer runs the output-string protocol: it acquires length+1
// bytes (the spare byte holds the terminator and is never surfaced), lets
// body perform the one native call that writes the string, and decodes the
// result. A non-positive length short-circuits to "" without invoking body.
//
// The status body returns is surfaced alongside the text. Any recognized
// non-success status discards whatever bytes were written, because the
// library may leave partial content behind on failure; callers that need
// to tell "empty" from "failed" must inspect the status, not the text.
// That discard deliberately covers IS_LOADING as well.
func WithStringBuffer(length int, body func(buf []byte) Status) (string, Status) {
	if length <= 0 {
		return "", StatusOK
	}

	text := ""
	status := StatusOK
	WithBuffer(1, length+1, true, func(buf []byte) {
		status = body(buf)
		if status.Recognized() && status != StatusOK {
			return
		}
		text = decodeCString(buf[:length])
	})
	return text, status
}

// decodeCString interprets b as UTF-8 text ending at the first NUL.
func decodeCString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
