package runner

import (
	"io"

	"digital.vasic.ktest/pkg/logging"
	"digital.vasic.ktest/pkg/monitor"
	"digital.vasic.ktest/pkg/registry"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithRegistry sets the test registry used by the runner.
func WithRegistry(reg registry.Registry) RunnerOption {
	return func(r *DefaultRunner) {
		r.registry = reg
	}
}

// WithLogger sets the logger for runner lifecycle events.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}

// WithOutput sets the writer for test console output.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *DefaultRunner) {
		r.out = w
	}
}

// WithErrOutput sets the writer for error reporting, such as
// spawn failures in isolated mode.
func WithErrOutput(w io.Writer) RunnerOption {
	return func(r *DefaultRunner) {
		r.errOut = w
	}
}

// WithIsolation enables or disables isolated mode, in which
// each test runs in its own child process.
func WithIsolation(isolate bool) RunnerOption {
	return func(r *DefaultRunner) {
		r.isolate = isolate
	}
}

// WithExitOnFailure makes RunAllTests terminate the process
// with a nonzero status when any test failed.
func WithExitOnFailure(exit bool) RunnerOption {
	return func(r *DefaultRunner) {
		r.exitOnFailure = exit
	}
}

// WithCollector attaches a monitor collector that receives a
// RunEvent for every test lifecycle transition.
func WithCollector(c *monitor.Collector) RunnerOption {
	return func(r *DefaultRunner) {
		r.collector = c
	}
}

// WithExecPath overrides the binary re-executed for isolated
// tests. The default is os.Args[0]. This is intended for
// testing the isolation plumbing.
func WithExecPath(path string) RunnerOption {
	return func(r *DefaultRunner) {
		r.execPath = path
	}
}
