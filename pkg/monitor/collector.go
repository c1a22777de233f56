package monitor

import (
	"sync"
	"time"
)

// Handler receives run events as they occur.
type Handler func(RunEvent)

// Collector fans run events out to registered handlers. It is
// safe for concurrent use, though the runner emits events
// strictly sequentially.
type Collector struct {
	mu       sync.RWMutex
	handlers []Handler
	events   []RunEvent
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// OnEvent registers a handler invoked for every emitted event.
func (c *Collector) OnEvent(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

// Emit records an event and delivers it to all handlers. A
// zero timestamp is stamped with the current time.
func (c *Collector) Emit(e RunEvent) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, e)
	handlers := make([]Handler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// Events returns a copy of all events emitted so far.
func (c *Collector) Events() []RunEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]RunEvent, len(c.events))
	copy(out, c.events)
	return out
}
