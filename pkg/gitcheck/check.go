// Package gitcheck verifies the project sits in a git repository, which the
// git-hook installer needs.
package gitcheck

import (
	"context"
	"fmt"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/probe"
)

// Check verifies git repository state.
type Check struct {
	Fix    string // remediation when not a repository
	Runner GitRunner
}

// Evaluate reports the current branch when inside a repository.
func (c *Check) Evaluate(ctx context.Context) check.Result {
	ctx, cancel := probe.WithTimeout(ctx, 0)
	defer cancel()

	if !c.Runner.IsGitRepo(ctx) {
		return check.Fail("Not a git repository", c.Fix)
	}

	branch, ok := c.Runner.CurrentBranch(ctx)
	switch {
	case !ok || branch == "":
		// fresh repositories have no HEAD yet
		return check.Pass("Found")
	case branch == "HEAD":
		return check.Pass("Detached HEAD")
	default:
		return check.Pass(fmt.Sprintf("On branch %s", branch))
	}
}
