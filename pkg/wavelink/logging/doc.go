// Package logging provides a minimal logging facade for the wavelink bridge.
//
// The Logger interface wraps a subset of log/slog so applications can swap
// in custom implementations for testing, redaction, or integration with an
// existing logging setup:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// Diagnostic() is the logger the call gate traces through when tracing is
// enabled. It writes to standard output only; nothing in the trace path
// ever touches the error stream.
//
// # Redaction
//
// Application keys and account credentials pass through the bridge as call
// arguments. Never log them raw; mark them instead:
//
//	logger.Debug(ctx, "session login", logging.Redacted("password"))
package logging
