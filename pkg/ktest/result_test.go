package ktest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_IsFinal(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusPassed, true},
		{StatusFailed, true},
		{"unknown", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			r := &Result{Status: tt.status}
			assert.Equal(t, tt.expected, r.IsFinal())
		})
	}
}

func TestStatusConstantValues(t *testing.T) {
	statuses := []string{
		StatusPending, StatusRunning,
		StatusPassed, StatusFailed,
	}
	for _, s := range statuses {
		assert.NotEmpty(t, s)
	}
	assert.Len(t, statuses, 4)
}
