package ktest

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"digital.vasic.ktest/pkg/assertion"
)

// failureSignal is the control-flow signal raised when an
// assertion fails. It carries no data: the diagnostic was
// already written before raising. It unwinds to the nearest
// test boundary and never past it.
type failureSignal struct{}

// Fail aborts the current test immediately without printing
// anything. Useful when the caller has already reported the
// problem.
func Fail() {
	panic(failureSignal{})
}

// IsFailure reports whether a recovered panic value is the
// assertion failure signal. Test boundaries use it to tell an
// assertion failure apart from an unexpected panic.
func IsFailure(rec any) bool {
	_, ok := rec.(failureSignal)
	return ok
}

var (
	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

// SetOutput redirects assertion failure diagnostics. The
// default is os.Stdout. Intended for tests of the framework
// itself.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

func output() io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	return out
}

// Check evaluates an assertion result. On success it does
// nothing and any extra context is discarded unrendered. On
// failure it writes the source location of the caller, the
// diagnostic message, and the extra context indented on its
// own line, then raises the failure signal. Context values of
// type func() string are invoked only on failure, so expensive
// context is never materialised for passing checks.
func Check(res assertion.Result, context ...any) {
	checkAt(res, 2, context...)
}

// checkAt implements Check with an explicit caller skip depth
// so the Assert* wrappers report their own caller's location.
func checkAt(res assertion.Result, skip int, context ...any) {
	if res.Passed {
		return
	}

	w := output()

	file := "???"
	line := 0
	if _, f, l, ok := runtime.Caller(skip); ok {
		file = f
		line = l
	}

	fmt.Fprintf(w, "%s:%d: Assertion Failure\n", file, line)
	fmt.Fprintln(w, res.Message)

	if len(context) > 0 {
		fmt.Fprintf(w, "    %s\n", renderContext(context))
	}

	panic(failureSignal{})
}

// renderContext flattens extra context values into a single
// line. Lazy func() string values are invoked here, on the
// failure path only.
func renderContext(context []any) string {
	parts := make([]string, 0, len(context))
	for _, c := range context {
		if fn, ok := c.(func() string); ok {
			parts = append(parts, fn())
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", c))
	}
	return strings.Join(parts, " ")
}

// AssertTrue fails the current test unless value is true.
func AssertTrue(value bool, context ...any) {
	checkAt(assertion.True("value", value), 2, context...)
}

// AssertFalse fails the current test unless value is false.
func AssertFalse(value bool, context ...any) {
	checkAt(assertion.False("value", value), 2, context...)
}

// AssertEq fails the current test unless expected and actual
// are equal.
func AssertEq[T comparable](
	expected, actual T, context ...any,
) {
	checkAt(
		assertion.Eq("expected", "actual", expected, actual),
		2, context...,
	)
}

// AssertNe fails the current test unless expected and actual
// differ.
func AssertNe[T comparable](
	expected, actual T, context ...any,
) {
	checkAt(
		assertion.Ne("expected", "actual", expected, actual),
		2, context...,
	)
}

// AssertGt fails the current test unless a > b.
func AssertGt[T cmp.Ordered](a, b T, context ...any) {
	checkAt(assertion.Gt("a", "b", a, b), 2, context...)
}

// AssertGe fails the current test unless a >= b.
func AssertGe[T cmp.Ordered](a, b T, context ...any) {
	checkAt(assertion.Ge("a", "b", a, b), 2, context...)
}

// AssertLt fails the current test unless a < b.
func AssertLt[T cmp.Ordered](a, b T, context ...any) {
	checkAt(assertion.Lt("a", "b", a, b), 2, context...)
}

// AssertLe fails the current test unless a <= b.
func AssertLe[T cmp.Ordered](a, b T, context ...any) {
	checkAt(assertion.Le("a", "b", a, b), 2, context...)
}

// AssertPanics fails the current test unless fn panics with a
// value of dynamic type E.
func AssertPanics[E any](fn func(), context ...any) {
	checkAt(assertion.Panics[E]("fn()", fn), 2, context...)
}
