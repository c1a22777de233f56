// Package assertion provides the check functions that back the
// ktest assertion layer. Each check is a pure function that
// compares its operands and produces a Result carrying the
// boolean outcome and a pre-formatted diagnostic message.
package assertion

import "fmt"

// Result captures the outcome of a single assertion check.
// It is a value type, created per check and consumed
// immediately by the assertion layer; it is never stored.
type Result struct {
	// Message is the pre-formatted diagnostic shown when the
	// check failed. It restates the assertion kind, the
	// operand expressions, and their evaluated values.
	Message string

	// Passed indicates whether the check succeeded.
	Passed bool
}

// Pass returns a successful Result with no message.
func Pass() Result {
	return Result{Passed: true}
}

// Fail returns a failed Result with the given diagnostic.
func Fail(msg string) Result {
	return Result{Message: msg}
}

// Failf returns a failed Result with a formatted diagnostic.
func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}
