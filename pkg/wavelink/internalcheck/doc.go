// Package internalcheck holds repository policy tests that run as part of
// the normal test suite.
//
// The checks load the module's packages with golang.org/x/tools/go/packages
// and enforce structural invariants that ordinary unit tests cannot see,
// such as confining all dynamic-loading machinery to the bindings layer.
package internalcheck
