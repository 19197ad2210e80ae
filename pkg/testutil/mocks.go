// Package testutil holds test doubles shared across check packages.
package testutil

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound mimics exec.ErrNotFound from a missing executable.
var ErrNotFound = errors.New("executable file not found in $PATH")

// MockRunner is a test double for probe.Runner.
type MockRunner struct {
	LookPathFunc          func(file string) (string, error)
	RunCommandContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// LookPath calls the mock function. A nil LookPathFunc finds every command
// under /usr/bin.
func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc == nil {
		return "/usr/bin/" + file, nil
	}
	return m.LookPathFunc(file)
}

// RunCommandContext calls the mock function.
func (m *MockRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandContextFunc(ctx, name, args...)
}

// Command is a canned response keyed by the full command line.
type Command struct {
	Stdout string
	Stderr string
	Err    error
}

// NewTableRunner returns a MockRunner answering from commands, keyed by
// "name arg1 arg2". Commands absent from the table are not found in PATH.
func NewTableRunner(commands map[string]Command) *MockRunner {
	installed := make(map[string]bool, len(commands))
	for line := range commands {
		installed[strings.Fields(line)[0]] = true
	}
	return &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			if !installed[file] {
				return "", ErrNotFound
			}
			return "/usr/bin/" + file, nil
		},
		RunCommandContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
			line := strings.Join(append([]string{name}, args...), " ")
			c, ok := commands[line]
			if !ok {
				return "", "unknown command", errors.New("exit status 1")
			}
			return c.Stdout, c.Stderr, c.Err
		},
	}
}
