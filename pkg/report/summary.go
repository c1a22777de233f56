// Package report aggregates test results into run summaries
// and persists them as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"digital.vasic.ktest/pkg/ktest"
)

// Summary is an aggregated view of a full test run.
type Summary struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// GeneratedAt is when the summary was built.
	GeneratedAt time.Time `json:"generated_at"`

	// Total is the number of tests that ran.
	Total int `json:"total"`

	// Passed is the number of passing tests.
	Passed int `json:"passed"`

	// Failed is the number of failing tests.
	Failed int `json:"failed"`

	// Duration is the summed wall-clock time of all tests.
	Duration time.Duration `json:"duration"`

	// Tests holds the per-test entries in execution order.
	Tests []TestSummary `json:"tests"`
}

// TestSummary is the per-test entry of a Summary.
type TestSummary struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration"`
	Signal   string        `json:"signal,omitempty"`
	Detail   string        `json:"detail,omitempty"`
}

// BuildSummary aggregates per-test results into a Summary.
func BuildSummary(results []ktest.Result) *Summary {
	s := &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Tests:       make([]TestSummary, 0, len(results)),
	}

	for _, r := range results {
		s.Tests = append(s.Tests, TestSummary{
			Name:     r.Name,
			Status:   r.Status,
			Duration: r.Duration,
			Signal:   r.Signal,
			Detail:   r.Detail,
		})

		s.Total++
		s.Duration += r.Duration

		if r.Status == ktest.StatusPassed {
			s.Passed++
		} else {
			s.Failed++
		}
	}

	return s
}

// AllPassed returns true if no test failed.
func (s *Summary) AllPassed() bool {
	return s.Failed == 0
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf(
			"failed to write summary: %w", err,
		)
	}
	return nil
}

// SaveSummary writes the summary to a JSON file, creating
// parent directories as needed.
func SaveSummary(s *Summary, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf(
				"failed to create output directory: %w", err,
			)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(
			"failed to create summary file: %w", err,
		)
	}
	defer func() { _ = f.Close() }()

	return s.WriteJSON(f)
}
