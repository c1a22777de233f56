// Package monitor provides live observation of a test run:
// lifecycle events, handler fan-out, and a WebSocket server
// that streams events to connected clients.
package monitor

import "time"

// EventType represents the type of run event.
type EventType string

const (
	// EventStarted is emitted when a test begins executing.
	EventStarted EventType = "started"

	// EventPassed is emitted when a test passes.
	EventPassed EventType = "passed"

	// EventFailed is emitted when a test fails.
	EventFailed EventType = "failed"

	// EventSummary is emitted once after all tests finished,
	// carrying the final counts.
	EventSummary EventType = "summary"
)

// RunEvent represents a lifecycle event during a test run.
type RunEvent struct {
	Type      EventType     `json:"type"`
	Test      string        `json:"test,omitempty"`
	Status    string        `json:"status,omitempty"`
	Signal    string        `json:"signal,omitempty"`
	Detail    string        `json:"detail,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Passed    int           `json:"passed,omitempty"`
	Failed    int           `json:"failed,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
