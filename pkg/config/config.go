// Package config resolves runner configuration from the
// process environment and, optionally, a YAML file.
// Environment variables always take precedence over file
// values. Malformed or unrecognized values disable the
// corresponding feature; configuration parsing is never fatal.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the runner looks for in the
// working directory.
const DefaultPath = ".ktest.yaml"

// Environment variable names recognized by the runner.
const (
	// EnvFork enables isolated (child process) mode when set
	// to the literal value "1".
	EnvFork = "KTEST_FORK"

	// EnvExit makes the runner terminate the process with a
	// nonzero status after the summary when set to "1" and at
	// least one test failed.
	EnvExit = "KTEST_EXIT"

	// EnvSelect marks a child process and names the registry
	// index of the single test it must run. Internal to the
	// isolation mechanism; not part of the public contract.
	EnvSelect = "KTEST_SELECT"
)

// Config holds runner configuration.
type Config struct {
	// Fork enables isolated mode: each test runs in its own
	// child process.
	Fork bool `yaml:"fork"`

	// ExitOnFailure makes the runner exit nonzero after the
	// summary if any test failed.
	ExitOnFailure bool `yaml:"exit_on_failure"`

	// Verbose enables debug logging of runner lifecycle
	// events.
	Verbose bool `yaml:"verbose"`
}

// FromEnv builds a Config from the process environment alone.
// Only the literal value "1" enables a feature; anything else,
// including an unset variable, leaves it disabled.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	return cfg
}

// Load reads a YAML config file and applies environment
// overrides on top. A missing file is not an error: the
// returned Config then reflects the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf(
				"failed to parse config file %s: %w",
				path, err,
			)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf(
			"failed to read config file %s: %w", path, err,
		)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides config fields from environment variables
// that are present. A present variable set to anything other
// than "1" disables the feature, matching the "unrecognized
// value means disabled" rule.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvFork); ok {
		c.Fork = v == "1"
	}
	if v, ok := os.LookupEnv(EnvExit); ok {
		c.ExitOnFailure = v == "1"
	}
}

// SelectedTest reports whether this process is an isolation
// child, and if so, which registry index it must run. A
// malformed selector is ignored.
func SelectedTest() (int, bool) {
	v, ok := os.LookupEnv(EnvSelect)
	if !ok {
		return 0, false
	}

	idx, err := strconv.Atoi(v)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
