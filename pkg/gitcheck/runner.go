package gitcheck

import (
	"context"

	"github.com/vertti/devdoctor/pkg/probe"
)

// GitRunner abstracts git command execution for testability.
type GitRunner interface {
	// IsGitRepo returns true if the project directory is inside a git repository.
	IsGitRepo(ctx context.Context) bool

	// CurrentBranch returns the name of the current branch.
	// Returns "HEAD" if in detached HEAD state.
	CurrentBranch(ctx context.Context) (string, bool)
}

// RealGitRunner executes actual git commands through a probe.Runner.
type RealGitRunner struct {
	Runner probe.Runner
}

func (r *RealGitRunner) IsGitRepo(ctx context.Context) bool {
	// git exits 128 outside a repository
	_, ok := probe.Run(ctx, r.Runner, "git", "rev-parse", "--git-dir")
	return ok
}

func (r *RealGitRunner) CurrentBranch(ctx context.Context) (string, bool) {
	return probe.Run(ctx, r.Runner, "git", "rev-parse", "--abbrev-ref", "HEAD")
}
