package ktest

import "time"

// Status constants for test execution outcomes.
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusPassed  = "passed"
	StatusFailed  = "failed"
)

// Result captures the outcome of a single test execution.
type Result struct {
	// Name is the test name.
	Name string `json:"name"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Duration is the wall-clock execution time.
	Duration time.Duration `json:"duration"`

	// Signal names the signal that terminated the test
	// process, when the test ran in isolated mode and died
	// by signal.
	Signal string `json:"signal,omitempty"`

	// Detail carries additional failure information, such as
	// the child exit code or a recovered panic value.
	Detail string `json:"detail,omitempty"`
}

// IsFinal returns true if the status is a terminal state.
func (r *Result) IsFinal() bool {
	switch r.Status {
	case StatusPassed, StatusFailed:
		return true
	}
	return false
}
