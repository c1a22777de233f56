package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_FansOutToAllHandlers(t *testing.T) {
	c := NewCollector()

	var first, second []RunEvent
	c.OnEvent(func(e RunEvent) {
		first = append(first, e)
	})
	c.OnEvent(func(e RunEvent) {
		second = append(second, e)
	})

	c.Emit(RunEvent{Type: EventStarted, Test: "alpha"})
	c.Emit(RunEvent{Type: EventPassed, Test: "alpha"})

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, EventStarted, first[0].Type)
	assert.Equal(t, EventPassed, first[1].Type)
}

func TestCollector_StampsTimestamp(t *testing.T) {
	c := NewCollector()

	var got RunEvent
	c.OnEvent(func(e RunEvent) { got = e })

	c.Emit(RunEvent{Type: EventStarted})
	assert.False(t, got.Timestamp.IsZero())
}

func TestCollector_KeepsExplicitTimestamp(t *testing.T) {
	c := NewCollector()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var got RunEvent
	c.OnEvent(func(e RunEvent) { got = e })

	c.Emit(RunEvent{Type: EventStarted, Timestamp: ts})
	assert.Equal(t, ts, got.Timestamp)
}

func TestCollector_RecordsEvents(t *testing.T) {
	c := NewCollector()
	c.Emit(RunEvent{Type: EventStarted, Test: "a"})
	c.Emit(RunEvent{Type: EventFailed, Test: "a"})
	c.Emit(RunEvent{Type: EventSummary, Failed: 1})

	events := c.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventSummary, events[2].Type)

	// Events returns a copy.
	events[0].Test = "mutated"
	assert.Equal(t, "a", c.Events()[0].Test)
}

func TestCollector_NoHandlers(t *testing.T) {
	c := NewCollector()
	assert.NotPanics(t, func() {
		c.Emit(RunEvent{Type: EventStarted})
	})
	assert.Len(t, c.Events(), 1)
}
