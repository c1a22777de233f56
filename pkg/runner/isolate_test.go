package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.ktest/pkg/ktest"
	"digital.vasic.ktest/pkg/registry"
)

// writeScript creates an executable shell script that stands
// in for the re-executed test binary, letting the tests drive
// every child exit path without rebuilding the process.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("isolation scripts require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "child.sh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(
		t, os.WriteFile(path, []byte(script), 0o755),
	)
	return path
}

func newIsolated(
	t *testing.T, execPath string,
) (*DefaultRunner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "victim", Fn: func() {}})

	var out, errOut bytes.Buffer
	r := NewRunner(
		WithRegistry(reg),
		WithOutput(&out),
		WithErrOutput(&errOut),
		WithIsolation(true),
		WithExecPath(execPath),
	)
	return r, &out, &errOut
}

func TestRunIsolated_ChildExitZeroPasses(t *testing.T) {
	script := writeScript(t, "exit 0")
	r, out, _ := newIsolated(t, script)

	results := r.RunAll()
	require.Len(t, results, 1)
	assert.Equal(t, ktest.StatusPassed, results[0].Status)
	assert.Contains(t, out.String(), "passed")
}

func TestRunIsolated_ChildNonzeroExitFails(t *testing.T) {
	script := writeScript(t, "exit 3")
	r, out, _ := newIsolated(t, script)

	results := r.RunAll()
	require.Len(t, results, 1)
	assert.Equal(t, ktest.StatusFailed, results[0].Status)
	assert.Equal(t, "exit code 3", results[0].Detail)
	assert.Empty(t, results[0].Signal)
	assert.Contains(t, out.String(), "failed")
}

func TestRunIsolated_ChildKilledBySignal(t *testing.T) {
	script := writeScript(t, "kill -KILL $$")
	r, out, _ := newIsolated(t, script)

	results := r.RunAll()
	require.Len(t, results, 1)
	assert.Equal(t, ktest.StatusFailed, results[0].Status)
	assert.NotEmpty(
		t, results[0].Signal,
		"a signal death must be recorded with its name",
	)
	assert.Contains(t, out.String(), "Signal:")
}

func TestRunIsolated_CrashDoesNotStopSuite(t *testing.T) {
	crash := writeScript(t, "kill -KILL $$")

	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "crasher", Fn: func() {}})
	reg.Register(ktest.Test{Name: "survivor", Fn: func() {}})

	var out, errOut bytes.Buffer
	r := NewRunner(
		WithRegistry(reg),
		WithOutput(&out),
		WithErrOutput(&errOut),
		WithIsolation(true),
		WithExecPath(crash),
	)

	results := r.RunAll()
	passed, failed := r.Summarize(results)

	// Every test execs the same crashing script here; the
	// point is that the run continued past the first crash.
	require.Len(t, results, 2)
	assert.Equal(t, 0, passed)
	assert.Equal(t, 2, failed)
}

func TestRunIsolated_SpawnFailureCountsAsFailed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-binary")
	r, _, errOut := newIsolated(t, missing)

	results := r.RunAll()
	passed, failed := r.Summarize(results)

	require.Len(t, results, 1)
	assert.Equal(t, ktest.StatusFailed, results[0].Status)
	assert.Contains(
		t, results[0].Detail, "start test process",
	)
	assert.Equal(t, 0, passed)
	assert.Equal(t, 1, failed)
	assert.Contains(t, errOut.String(), "Error starting test")
}

func TestRunIsolated_PassesSelectorToChild(t *testing.T) {
	// The child script succeeds only when KTEST_SELECT names
	// the test's registry index.
	script := writeScript(
		t, `[ "$KTEST_SELECT" = "1" ] || exit 1`,
	)

	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "zero", Fn: func() {}})
	reg.Register(ktest.Test{Name: "one", Fn: func() {}})

	var out bytes.Buffer
	r := NewRunner(
		WithRegistry(reg),
		WithOutput(&out),
		WithErrOutput(&out),
		WithIsolation(true),
		WithExecPath(script),
	)

	results := r.RunAll()
	require.Len(t, results, 2)
	assert.Equal(t, ktest.StatusFailed, results[0].Status)
	assert.Equal(t, ktest.StatusPassed, results[1].Status)
}

func TestRunSelected_PassingTest(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "fine", Fn: func() {}})

	r := NewRunner(WithRegistry(reg))
	assert.Equal(t, 0, r.RunSelected(0))
}

func TestRunSelected_AssertionFailureExitsOne(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "broken", Fn: func() {
		ktest.Fail()
	}})

	r := NewRunner(WithRegistry(reg))
	assert.Equal(t, 1, r.RunSelected(0))
}

func TestRunSelected_IndexOutOfRange(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "only", Fn: func() {}})

	var errOut bytes.Buffer
	r := NewRunner(
		WithRegistry(reg),
		WithErrOutput(&errOut),
	)

	assert.Equal(t, 2, r.RunSelected(1))
	assert.Equal(t, 2, r.RunSelected(-1))
	assert.Contains(t, errOut.String(), "no registered test")
}

func TestRunSelected_UnexpectedPanicPropagates(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(ktest.Test{Name: "wild", Fn: func() {
		panic("not an assertion")
	}})

	r := NewRunner(WithRegistry(reg))
	assert.PanicsWithValue(t, "not an assertion", func() {
		r.RunSelected(0)
	})
}
