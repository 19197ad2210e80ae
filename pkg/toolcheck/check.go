// Package toolcheck verifies that a tool is installed at a minimum major
// version.
package toolcheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/probe"
	"github.com/vertti/devdoctor/pkg/version"
)

// Check verifies that a command exists and reports a version.
type Check struct {
	Command     string        // command name to probe
	VersionArgs []string      // args to get version (default: --version)
	MinMajor    int           // minimum major version; 0 means any version
	InstallFix  string        // remediation when the tool is missing
	UpgradeFix  string        // remediation when the version is too old
	Timeout     time.Duration // timeout for version command (default: probe.DefaultTimeout)
	Runner      probe.Runner  // injected for testing
}

// Evaluate runs the version probe and gates on the major version.
func (c *Check) Evaluate(ctx context.Context) check.Result {
	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	ctx, cancel := probe.WithTimeout(ctx, c.Timeout)
	defer cancel()

	output, ok := probe.Run(ctx, c.Runner, c.Command, args...)
	if !ok {
		return check.Fail("Not installed", c.InstallFix)
	}

	observed := firstLine(output)
	if observed == "" {
		observed = "Found"
	}
	if c.MinMajor <= 0 {
		return check.Pass(observed)
	}

	var found *version.Version
	if v, err := version.Extract(output); err == nil {
		found = &v
	} else {
		slog.Debug("version not parsed", "command", c.Command, "error", err)
	}

	if !version.MeetsMinimum(found, c.MinMajor) {
		fix := c.UpgradeFix
		if fix == "" {
			fix = c.InstallFix
		}
		return check.Fail(fmt.Sprintf("%s (need %d+)", observed, c.MinMajor), fix)
	}

	return check.Pass(observed)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
