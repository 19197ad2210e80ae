package probe

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Run executes name with args and returns its trimmed output. ok is false
// when the executable is missing, fails to start, exits non-zero, runs past
// the deadline or panics inside the Runner; callers cannot tell these apart.
//
// Output is taken from stdout, falling back to stderr for tools that print
// their version there.
func Run(ctx context.Context, r Runner, name string, args ...string) (output string, ok bool) {
	logger := slog.With("command", name, "args", args)
	defer func() {
		if p := recover(); p != nil {
			logger.Debug("probe panicked", "panic", p)
			output, ok = "", false
		}
	}()

	path, err := r.LookPath(name)
	if err != nil {
		logger.Debug("command not found", "error", err)
		return "", false
	}

	start := time.Now()
	stdout, stderr, err := r.RunCommandContext(ctx, name, args...)
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug("command failed",
			"path", path,
			"elapsed", elapsed,
			"error", err,
			"deadline_exceeded", ctx.Err() == context.DeadlineExceeded,
			"stderr", strings.TrimSpace(stderr),
		)
		return "", false
	}

	logger.Debug("command succeeded", "path", path, "elapsed", elapsed)

	output = strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}
	return output, true
}

// WithTimeout derives a context bounded by timeout, or by DefaultTimeout
// when timeout is not positive.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
