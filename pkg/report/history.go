package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// HistoricalEntry represents a single run in the historical
// log. Each entry is stored as one JSON line.
type HistoricalEntry struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Duration  string    `json:"duration"`
}

// AppendToHistory adds a run summary to the historical log
// stored at historyPath.
func AppendToHistory(
	historyPath string,
	s *Summary,
) error {
	entry := HistoricalEntry{
		Timestamp: s.GeneratedAt,
		RunID:     s.RunID,
		Total:     s.Total,
		Passed:    s.Passed,
		Failed:    s.Failed,
		Duration:  s.Duration.String(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
