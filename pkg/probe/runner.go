// Package probe runs external commands and reduces every failure to a
// single "unavailable" signal.
package probe

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a probe when the caller sets no deadline.
const DefaultTimeout = 30 * time.Second

// waitDelay is how long Wait lingers on inherited pipes after the process
// is killed, in case grandchildren keep them open.
const waitDelay = 2 * time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct {
	Dir string // working directory for commands; empty means the current one
}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command and returns its output. When ctx is
// done the command and every process it spawned are killed.
func (r *RealRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- commands come from the static check table
	cmd.Dir = r.Dir
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}
