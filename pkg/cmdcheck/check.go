// Package cmdcheck runs project validation commands such as type-check,
// lint and test under a mandatory timeout.
package cmdcheck

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/probe"
)

// DefaultTimeout bounds a validation command when Timeout is unset.
const DefaultTimeout = 2 * time.Minute

// Check verifies that a validation command exits successfully.
type Check struct {
	Command []string      // command and args, e.g. pnpm run lint
	Timeout time.Duration // upper bound for the command (default: 2m)
	Runner  probe.Runner  // injected for testing
}

// Evaluate runs the command. A non-zero exit, a missing executable and an
// expired timeout all fail the check.
func (c *Check) Evaluate(ctx context.Context) check.Result {
	if len(c.Command) == 0 {
		return check.Fail("No command configured", "")
	}
	fix := c.CommandLine() + " to see details"

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, ok := probe.Run(ctx, c.Runner, c.Command[0], c.Command[1:]...); !ok {
		if ctx.Err() == context.DeadlineExceeded {
			slog.Debug("validation command timed out", "command", c.CommandLine(), "timeout", timeout)
		}
		return check.Fail("Failing", "Run: "+fix)
	}

	return check.Pass("Passing")
}

// CommandLine returns the command as it would be typed.
func (c *Check) CommandLine() string {
	return strings.Join(c.Command, " ")
}
