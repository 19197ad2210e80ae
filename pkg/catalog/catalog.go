// Package catalog declares the default set of environment checks. New
// checks are added by extending the tables below.
package catalog

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/cmdcheck"
	"github.com/vertti/devdoctor/pkg/filecheck"
	"github.com/vertti/devdoctor/pkg/gitcheck"
	"github.com/vertti/devdoctor/pkg/jsoncheck"
	"github.com/vertti/devdoctor/pkg/probe"
	"github.com/vertti/devdoctor/pkg/toolcheck"
)

// Descriptor is the project descriptor file, relative to the project root.
const Descriptor = "package.json"

// Options wires the catalog to its environment.
type Options struct {
	Dir               string        // project root
	ValidationTimeout time.Duration // per validation command; 0 uses cmdcheck.DefaultTimeout
	SkipValidation    bool          // omit validation commands

	Runner probe.Runner         // runs probes and validation commands in Dir
	FS     filecheck.FileSystem // artifact lookups
	JSONFS jsoncheck.FileSystem // descriptor reads
	Git    gitcheck.GitRunner   // repository state
}

type tool struct {
	name       string
	command    string
	minMajor   int
	required   bool
	installFix string
	upgradeFix string
}

// tools are probed with --version.
var tools = []tool{
	{
		name:       "Node.js",
		command:    "node",
		minMajor:   20,
		required:   true,
		installFix: "Install Node.js 20+ from https://nodejs.org",
		upgradeFix: "Upgrade Node.js to 20+ (e.g. nvm install 20)",
	},
	{
		name:       "pnpm",
		command:    "pnpm",
		minMajor:   9,
		required:   true,
		installFix: "Run: npm install -g pnpm",
		upgradeFix: "Run: pnpm self-update",
	},
	{
		name:       "Git",
		command:    "git",
		minMajor:   2,
		required:   true,
		installFix: "Install git from https://git-scm.com",
		upgradeFix: "Upgrade git to 2.0+",
	},
	{
		name:       "Rust",
		command:    "rustc",
		minMajor:   1,
		required:   false,
		installFix: "Install via https://rustup.rs (only needed for native modules)",
		upgradeFix: "Run: rustup update",
	},
	{
		name:       "Cargo",
		command:    "cargo",
		minMajor:   1,
		required:   false,
		installFix: "Install via https://rustup.rs (only needed for native modules)",
		upgradeFix: "Run: rustup update",
	},
}

type artifact struct {
	name string
	path string
	dir  bool
	fix  string
}

var artifacts = []artifact{
	{name: "node_modules", path: "node_modules", dir: true, fix: "Run: pnpm install"},
	{name: "tsconfig.json", path: "tsconfig.json", fix: "Restore tsconfig.json from version control"},
}

type validation struct {
	name   string
	script string
}

// validations run as "pnpm run <script>" when the descriptor declares the script.
var validations = []validation{
	{name: "TypeScript", script: "typecheck"},
	{name: "Lint", script: "lint"},
	{name: "Tests", script: "test"},
}

// QuickStart is printed after a successful run.
var QuickStart = []string{
	"pnpm dev     Start the development server",
	"pnpm test    Run the test suite",
	"pnpm build   Build for production",
}

// Checks returns the default checks in report order: tool versions, then
// project files, then validation commands.
func Checks(opts Options) []check.Check {
	var checks []check.Check

	for _, t := range tools {
		checks = append(checks, check.Check{
			Name:     t.name,
			Required: t.required,
			Evaluator: &toolcheck.Check{
				Command:    t.command,
				MinMajor:   t.minMajor,
				InstallFix: t.installFix,
				UpgradeFix: t.upgradeFix,
				Runner:     opts.Runner,
			},
		})
	}

	descriptor := filepath.Join(opts.Dir, Descriptor)
	checks = append(checks, check.Check{
		Name:     Descriptor,
		Required: true,
		Evaluator: &jsoncheck.Check{
			File:       descriptor,
			HasKeys:    []string{"name"},
			Fix:        "Run from project root directory",
			InvalidFix: "Make sure " + Descriptor + " is valid JSON with a \"name\" field",
			FS:         opts.JSONFS,
		},
	})

	for _, a := range artifacts {
		checks = append(checks, check.Check{
			Name:     a.name,
			Required: true,
			Evaluator: &filecheck.Check{
				Path:      filepath.Join(opts.Dir, a.path),
				ExpectDir: a.dir,
				Fix:       a.fix,
				FS:        opts.FS,
			},
		})
	}

	checks = append(checks, check.Check{
		Name:      "Git repository",
		Required:  false,
		Evaluator: &gitcheck.Check{Fix: "Run: git init (needed for git hooks)", Runner: opts.Git},
	})

	if opts.SkipValidation {
		return checks
	}

	declared := declaredScripts(opts.JSONFS, descriptor)
	for _, v := range validations {
		if declared != nil && !declared["scripts."+v.script] {
			slog.Debug("validation script not declared", "script", v.script)
			continue
		}
		checks = append(checks, check.Check{
			Name:     v.name,
			Required: true,
			Evaluator: &cmdcheck.Check{
				Command: []string{"pnpm", "run", v.script},
				Timeout: opts.ValidationTimeout,
				Runner:  opts.Runner,
			},
		})
	}

	return checks
}

// declaredScripts returns which validation scripts the descriptor declares,
// or nil when it cannot be read. A nil map registers every validation so the
// run stays the same shape.
func declaredScripts(fsys jsoncheck.FileSystem, descriptor string) map[string]bool {
	paths := make([]string, len(validations))
	for i, v := range validations {
		paths[i] = "scripts." + v.script
	}

	found, err := jsoncheck.Keys(fsys, descriptor, paths...)
	if err != nil {
		slog.Debug("descriptor scripts unavailable", "error", err)
		return nil
	}
	return found
}
