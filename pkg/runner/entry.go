package runner

import (
	"os"

	"digital.vasic.ktest/pkg/config"
	"digital.vasic.ktest/pkg/logging"
)

// RunAllTests is the zero-argument suite entry point. A host
// program calls it from main after all tests have registered
// themselves. It reads KTEST_FORK and KTEST_EXIT from the
// environment once, executes the full suite, prints the
// summary, and terminates the process with a nonzero status
// only when exit-on-failure is configured and at least one
// test failed.
//
// A .ktest.yaml file in the working directory supplies
// defaults; the environment overrides it.
//
// When the process is an isolation child (KTEST_SELECT is
// set), it runs exactly the selected test and exits with the
// child status instead.
func RunAllTests() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		// A broken config file never aborts the run.
		cfg = config.FromEnv()
	}

	var logger logging.Logger = logging.NullLogger{}
	if cfg.Verbose {
		logger = logging.NewConsoleLogger(true)
	}

	r := NewRunner(
		WithIsolation(cfg.Fork),
		WithExitOnFailure(cfg.ExitOnFailure),
		WithLogger(logger),
	)

	if idx, ok := config.SelectedTest(); ok {
		os.Exit(r.RunSelected(idx))
	}

	results := r.RunAll()
	_, failed := r.Summarize(results)

	if r.ExitOnFailure() && failed > 0 {
		os.Exit(1)
	}
}
