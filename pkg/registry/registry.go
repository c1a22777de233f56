// Package registry provides the process-wide ordered test
// registry. Tests register themselves at package init time,
// strictly before the runner starts; the registry is read-only
// afterwards. Iteration order always equals registration
// order, and duplicate names are legal.
package registry

import (
	"sync"

	"digital.vasic.ktest/pkg/ktest"
)

// Registry defines the interface for collecting tests.
type Registry interface {
	// Register appends a test. There is no deduplication and
	// no removal; append order is the iteration order.
	Register(t ktest.Test)

	// All returns the registered tests in registration order.
	All() []ktest.Test

	// Count returns the number of registered tests.
	Count() int

	// Clear removes all registered tests.
	Clear()
}

// DefaultRegistry is the standard Registry implementation.
// It is safe for concurrent use, though in normal operation
// all writes happen during single-threaded init.
type DefaultRegistry struct {
	mu    sync.Mutex
	tests []ktest.Test
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{}
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// Register appends a test to the registry.
func (r *DefaultRegistry) Register(t ktest.Test) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests = append(r.tests, t)
}

// All returns a copy of the registered tests in registration
// order.
func (r *DefaultRegistry) All() []ktest.Test {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ktest.Test, len(r.tests))
	copy(out, r.tests)
	return out
}

// Count returns the number of registered tests.
func (r *DefaultRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tests)
}

// Clear removes all registered tests.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests = nil
}

// Add registers a test with the default registry and returns
// true, so test files can self-register at init time:
//
//	var _ = registry.Add("addition", func() {
//	    ktest.AssertEq(4, add(2, 2))
//	})
//
// Every such declaration runs before main, which guarantees
// the registry is fully populated before the runner starts.
func Add(name string, fn func()) bool {
	Default.Register(ktest.Test{Name: name, Fn: fn})
	return true
}
