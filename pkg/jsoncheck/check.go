// Package jsoncheck validates the project descriptor.
package jsoncheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/vertti/devdoctor/pkg/check"
)

// Check verifies that a JSON descriptor exists, parses and declares keys.
type Check struct {
	File       string     // path to JSON file
	HasKeys    []string   // gjson paths that must exist, e.g. "name"
	Fix        string     // remediation when the file is missing
	InvalidFix string     // remediation when the file is malformed
	FS         FileSystem // injected for testing
}

// Evaluate reads and validates the descriptor.
func (c *Check) Evaluate(_ context.Context) check.Result {
	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		slog.Debug("descriptor unreadable", "file", c.File, "error", err)
		return check.Fail("Not found", c.Fix)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return check.Fail("Invalid JSON", c.InvalidFix)
	}

	for _, key := range c.HasKeys {
		if !gjson.Get(doc, key).Exists() {
			return check.Fail(fmt.Sprintf("Missing %q", key), c.InvalidFix)
		}
	}

	return check.Pass("Found")
}

// Keys reports which of the given gjson paths exist in file. It returns an
// error when the file cannot be read or is not valid JSON.
func Keys(fsys FileSystem, file string, paths ...string) (map[string]bool, error) {
	content, err := fsys.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("invalid JSON in %s", file)
	}

	found := make(map[string]bool, len(paths))
	for i, res := range gjson.GetMany(doc, paths...) {
		found[paths[i]] = res.Exists()
	}
	return found, nil
}
