// Package filecheck reports whether project artifacts exist.
package filecheck

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vertti/devdoctor/pkg/check"
)

// Check verifies that a file or directory exists.
type Check struct {
	Path      string     // path to check
	ExpectDir bool       // expect a directory rather than a file
	Fix       string     // remediation when missing
	FS        FileSystem // injected for testing
}

// Evaluate stats the path. Any stat error counts as missing.
func (c *Check) Evaluate(_ context.Context) check.Result {
	info, err := c.FS.Stat(c.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("stat failed", "path", c.Path, "error", err)
		}
		return check.Fail("Not found", c.Fix)
	}

	if c.ExpectDir && !info.IsDir() {
		return check.Fail("Not a directory", c.Fix)
	}
	if !c.ExpectDir && info.IsDir() {
		return check.Fail(fmt.Sprintf("%s is a directory", info.Name()), c.Fix)
	}

	return check.Pass("Found")
}
