//go:build unix

package devdoctor_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/cmdcheck"
	"github.com/vertti/devdoctor/pkg/doctor"
	"github.com/vertti/devdoctor/pkg/filecheck"
	"github.com/vertti/devdoctor/pkg/jsoncheck"
	"github.com/vertti/devdoctor/pkg/output"
	"github.com/vertti/devdoctor/pkg/probe"
	"github.com/vertti/devdoctor/pkg/toolcheck"
)

// Integration tests verify Real* implementations work with actual system resources.
// Unit tests in each package cover edge cases; these tests verify end-to-end integration.

func TestIntegration_Tool(t *testing.T) {
	c := toolcheck.Check{
		Command:     "sh",
		VersionArgs: []string{"-c", "echo 'shell 5.2.15'"},
		MinMajor:    5,
		Runner:      &probe.RealRunner{},
	}

	result := c.Evaluate(context.Background())

	if !result.OK() {
		t.Errorf("Status = %v, want OK (message: %s)", result.Status, result.Message)
	}
	if result.Message != "shell 5.2.15" {
		t.Errorf("Message = %q, want %q", result.Message, "shell 5.2.15")
	}
}

func TestIntegration_ToolMissing(t *testing.T) {
	c := toolcheck.Check{
		Command:    "devdoctor-nonexistent-tool-12345",
		MinMajor:   1,
		InstallFix: "install it",
		Runner:     &probe.RealRunner{},
	}

	result := c.Evaluate(context.Background())

	if result.OK() || result.Message != "Not installed" || result.Fix != "install it" {
		t.Errorf("Evaluate() = %+v, want Not installed with fix", result)
	}
}

func TestIntegration_Artifacts(t *testing.T) {
	dir := t.TempDir()
	descriptor := filepath.Join(dir, "package.json")
	if err := os.WriteFile(descriptor, []byte(`{"name": "app"}`), 0o600); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "node_modules"), 0o750); err != nil {
		t.Fatalf("failed to create node_modules: %v", err)
	}

	checks := []check.Evaluator{
		&jsoncheck.Check{File: descriptor, HasKeys: []string{"name"}, FS: &jsoncheck.RealFileSystem{}},
		&filecheck.Check{Path: filepath.Join(dir, "node_modules"), ExpectDir: true, FS: &filecheck.RealFileSystem{}},
	}

	for _, c := range checks {
		if result := c.Evaluate(context.Background()); !result.OK() {
			t.Errorf("%T: Status = %v, want OK (message: %s)", c, result.Status, result.Message)
		}
	}
}

func TestIntegration_ValidationTimeout(t *testing.T) {
	c := cmdcheck.Check{
		Command: []string{"sleep", "10"},
		Timeout: 200 * time.Millisecond,
		Runner:  &probe.RealRunner{},
	}

	start := time.Now()
	result := c.Evaluate(context.Background())

	if result.OK() {
		t.Error("Status = OK, want FAIL after timeout")
	}
	if result.Fix != "Run: sleep 10 to see details" {
		t.Errorf("Fix = %q, want %q", result.Fix, "Run: sleep 10 to see details")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Evaluate took %v, want it bounded by the timeout", elapsed)
	}
}

func TestIntegration_Run(t *testing.T) {
	runner := &probe.RealRunner{}
	checks := []check.Check{
		{Name: "Shell", Required: true, Evaluator: &toolcheck.Check{Command: "sh", VersionArgs: []string{"-c", "echo 1.0.0"}, MinMajor: 1, Runner: runner}},
		{Name: "Optional", Required: false, Evaluator: &toolcheck.Check{Command: "devdoctor-nonexistent-tool-12345", Runner: runner}},
		{Name: "True", Required: true, Evaluator: &cmdcheck.Check{Command: []string{"true"}, Runner: runner}},
	}

	var buf bytes.Buffer
	p := output.NewPrinter(&buf, false)
	report := doctor.Run(context.Background(), checks, p)
	code := (&doctor.Finalizer{Rerun: "devdoctor"}).Finalize(report, p)

	if code != doctor.ExitOK {
		t.Errorf("exit code = %d, want %d\n%s", code, doctor.ExitOK, buf.String())
	}
	if len(report.Results) != len(checks) {
		t.Errorf("len(Results) = %d, want %d", len(report.Results), len(checks))
	}
}

func TestIntegration_ValidationTimeoutKillsChildren(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")
	c := cmdcheck.Check{
		Command: []string{"sh", "-c", "(sleep 1; touch " + marker + ") & wait"},
		Timeout: 200 * time.Millisecond,
		Runner:  &probe.RealRunner{},
	}

	if result := c.Evaluate(context.Background()); result.OK() {
		t.Fatal("Status = OK, want FAIL after timeout")
	}

	time.Sleep(2 * time.Second)
	if _, err := os.Stat(marker); err == nil {
		t.Error("child of the validation command kept running after the timeout")
	}
}
