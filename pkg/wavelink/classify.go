package wavelink

// Check classifies a raw call result. The policy, evaluated in order:
//
//  1. Values that are not Status at all pass through verbatim, even if
//     they happen to look error-like to the caller's domain.
//  2. StatusOK passes through.
//  3. StatusIsLoading passes through: deferred readiness is not failure.
//  4. Everything else, including statuses outside the SDK's declared
//     vocabulary, raises a StatusError naming the symbol.
//
// Call sites that manage statuses manually should use raw invocation and
// skip Check entirely.
func Check(v any) (any, error) {
	s, ok := v.(Status)
	if !ok {
		return v, nil
	}
	switch s {
	case StatusOK, StatusIsLoading:
		return s, nil
	}
	return nil, &StatusError{Status: s}
}
