package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"digital.vasic.ktest/pkg/config"
	"digital.vasic.ktest/pkg/ktest"
	"digital.vasic.ktest/pkg/logging"
)

// runIsolated executes a test in its own child process. Go
// has no fork, so the runner re-executes the current binary
// with KTEST_SELECT naming the test's registry index; the
// child runs exactly that test and exits 0 on pass, 1 on
// assertion failure. Any other fault terminates the child
// through its default path, which the parent observes as a
// nonzero exit or a signal. The parent blocks until the child
// terminates; there is no timeout, so a hung test hangs the
// run.
func (r *DefaultRunner) runIsolated(
	index int, t ktest.Test,
) ktest.Result {
	res := ktest.Result{
		Name:   t.Name,
		Status: ktest.StatusRunning,
	}
	start := time.Now()

	cmd := exec.Command(r.execPath)
	cmd.Env = append(
		os.Environ(),
		fmt.Sprintf("%s=%d", config.EnvSelect, index),
	)
	cmd.Stdout = r.out
	cmd.Stderr = r.errOut

	err := cmd.Run()
	res.Duration = time.Since(start)

	if err == nil {
		res.Status = ktest.StatusPassed
		return res
	}

	res.Status = ktest.StatusFailed

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ws, ok := exitErr.Sys().(syscall.WaitStatus)
		if ok && ws.Signaled() {
			res.Signal = ws.Signal().String()
		} else {
			res.Detail = fmt.Sprintf(
				"exit code %d", exitErr.ExitCode(),
			)
		}
		return res
	}

	// The child never started. Counted as a failure so the
	// summary still accounts for every registered test.
	res.Detail = fmt.Sprintf("start test process: %v", err)
	fmt.Fprintf(
		r.errOut, "Error starting test %s: %v\n",
		t.Name, err,
	)
	r.logger.Error(
		"spawn_error",
		logging.Field{Key: "test", Value: t.Name},
		logging.Field{Key: "error", Value: err.Error()},
	)
	return res
}

// RunSelected executes the single test at the given registry
// index and returns the child process exit code: 0 on pass, 1
// on assertion failure, 2 when the index is out of range.
// Only the assertion failure signal is recovered here; any
// other panic terminates the child by default, which the
// parent reports as a failure.
func (r *DefaultRunner) RunSelected(index int) int {
	tests := r.registry.All()
	if index < 0 || index >= len(tests) {
		fmt.Fprintf(
			r.errOut,
			"no registered test at index %d\n", index,
		)
		return 2
	}

	code := 0
	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if ktest.IsFailure(rec) {
				code = 1
				return
			}
			panic(rec)
		}()

		tests[index].Fn()
	}()

	return code
}
