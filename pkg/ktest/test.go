// Package ktest holds the core types of the testing
// framework: the Test unit, per-test Results, and the
// assertion expression layer that converts a failed check
// into a control-flow signal aborting the current test.
package ktest

// Test is a single named unit of work. Tests are identified
// by registration order; names are not required to be unique,
// though duplicates make reports ambiguous.
type Test struct {
	// Name is the human-readable test name.
	Name string

	// Fn is the test body. It reports failure by raising the
	// assertion failure signal via the Assert* helpers or
	// Check; returning normally means the test passed.
	Fn func()
}
