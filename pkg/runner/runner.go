// Package runner executes registered tests strictly
// sequentially, in registration order. Each test either runs
// in-process inside a recover boundary, or, in isolated mode,
// in its own child process so that a fatal fault in one test
// cannot take down the rest of the suite.
package runner

import (
	"fmt"
	"io"
	"os"
	"time"

	"digital.vasic.ktest/pkg/ktest"
	"digital.vasic.ktest/pkg/logging"
	"digital.vasic.ktest/pkg/monitor"
	"digital.vasic.ktest/pkg/registry"
)

// ANSI color codes for runner output.
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[1;36m"
	colorGreen = "\033[1;32m"
	colorRed   = "\033[1;31m"
	colorBold  = "\033[1m"
)

// Runner defines the interface for test execution.
type Runner interface {
	// RunAll executes every registered test in registration
	// order and returns the per-test results.
	RunAll() []ktest.Result

	// Summarize counts terminal results and prints the
	// summary block.
	Summarize(results []ktest.Result) (passed, failed int)
}

// DefaultRunner is the standard Runner implementation.
type DefaultRunner struct {
	registry      registry.Registry
	logger        logging.Logger
	out           io.Writer
	errOut        io.Writer
	collector     *monitor.Collector
	isolate       bool
	exitOnFailure bool
	execPath      string
}

// NewRunner creates a DefaultRunner with the supplied
// options. By default it runs the Default registry
// in-process, writing to stdout and stderr.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		registry: registry.Default,
		logger:   logging.NullLogger{},
		out:      os.Stdout,
		errOut:   os.Stderr,
		execPath: os.Args[0],
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExitOnFailure reports whether the runner is configured to
// terminate the process after a failing run.
func (r *DefaultRunner) ExitOnFailure() bool {
	return r.exitOnFailure
}

// RunAll executes every registered test and returns the
// results. The registry must be fully populated before this
// is called; tests registering during a run are undefined.
func (r *DefaultRunner) RunAll() []ktest.Result {
	tests := r.registry.All()
	results := make([]ktest.Result, 0, len(tests))

	for i, t := range tests {
		fmt.Fprintf(
			r.out, "Running test: %s%s%s\n",
			colorCyan, t.Name, colorReset,
		)
		r.logger.Debug(
			"test_started",
			logging.Field{Key: "test", Value: t.Name},
		)
		r.emit(monitor.RunEvent{
			Type: monitor.EventStarted,
			Test: t.Name,
		})

		var res ktest.Result
		if r.isolate {
			res = r.runIsolated(i, t)
		} else {
			res = r.runInProcess(t)
		}

		r.printOutcome(res)
		r.emitOutcome(res)
		results = append(results, res)
	}

	return results
}

// runInProcess executes a test body inside a local failure
// boundary. The assertion failure signal converts to a FAILED
// result; any other panic is also recorded as FAILED so one
// broken test cannot abort the rest of the run.
func (r *DefaultRunner) runInProcess(
	t ktest.Test,
) ktest.Result {
	res := ktest.Result{
		Name:   t.Name,
		Status: ktest.StatusRunning,
	}
	start := time.Now()

	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			res.Status = ktest.StatusFailed
			if !ktest.IsFailure(rec) {
				res.Detail = fmt.Sprintf("panic: %v", rec)
				fmt.Fprintf(
					r.errOut,
					"Test %s panicked: %v\n", t.Name, rec,
				)
			}
		}()

		t.Fn()
		res.Status = ktest.StatusPassed
	}()

	res.Duration = time.Since(start)
	return res
}

// printOutcome writes the per-test outcome line.
func (r *DefaultRunner) printOutcome(res ktest.Result) {
	if res.Status == ktest.StatusPassed {
		fmt.Fprintf(
			r.out, "Test %s%s%s %spassed%s.\n",
			colorCyan, res.Name, colorReset,
			colorGreen, colorReset,
		)
		return
	}

	fmt.Fprintf(
		r.out, "Test %s%s%s %sfailed%s.",
		colorCyan, res.Name, colorReset,
		colorRed, colorReset,
	)
	if res.Signal != "" {
		fmt.Fprintf(r.out, " Signal: %s", res.Signal)
	}
	fmt.Fprintln(r.out)
}

// Summarize counts terminal results and prints the summary
// block, including the failure banner when any test failed.
func (r *DefaultRunner) Summarize(
	results []ktest.Result,
) (passed, failed int) {
	for _, res := range results {
		if res.Status == ktest.StatusPassed {
			passed++
		} else {
			failed++
		}
	}

	fmt.Fprintf(
		r.out, "%s## TEST RESULTS ##%s\n",
		colorBold, colorReset,
	)
	fmt.Fprintf(r.out, "  Tests passed: %d\n", passed)
	fmt.Fprintf(r.out, "  Tests failed: %d\n", failed)

	if failed > 0 {
		fmt.Fprintf(
			r.out, "%s## TESTS FAILED ##%s\n",
			colorRed, colorReset,
		)
	}

	r.emit(monitor.RunEvent{
		Type:   monitor.EventSummary,
		Passed: passed,
		Failed: failed,
	})

	return passed, failed
}

// emit delivers an event to the collector, if one is set.
func (r *DefaultRunner) emit(e monitor.RunEvent) {
	if r.collector == nil {
		return
	}
	r.collector.Emit(e)
}

// emitOutcome emits the terminal event for a test result.
func (r *DefaultRunner) emitOutcome(res ktest.Result) {
	typ := monitor.EventPassed
	if res.Status != ktest.StatusPassed {
		typ = monitor.EventFailed
	}
	r.emit(monitor.RunEvent{
		Type:     typ,
		Test:     res.Name,
		Status:   res.Status,
		Signal:   res.Signal,
		Detail:   res.Detail,
		Duration: res.Duration,
	})
}
