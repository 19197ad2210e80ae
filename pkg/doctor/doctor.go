// Package doctor runs an ordered list of checks, streams each result as it
// is produced and folds the results into a RunReport.
//
// A check that panics is recovered and recorded as a failed Result, so one
// broken check never stops the ones after it.
package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vertti/devdoctor/pkg/check"
	"github.com/vertti/devdoctor/pkg/output"
)

// Entry pairs a check with its outcome.
type Entry struct {
	Check  check.Check
	Result check.Result
}

// RunReport is the outcome of one run, in declaration order.
type RunReport struct {
	Results []Entry
}

// HasBlockingFailure reports whether any required check failed.
func (r RunReport) HasBlockingFailure() bool {
	for _, e := range r.Results {
		if blocking(e) {
			return true
		}
	}
	return false
}

// Counts tallies passes, required failures and advisory failures.
func (r RunReport) Counts() output.Counts {
	var c output.Counts
	for _, e := range r.Results {
		switch {
		case e.Result.OK():
			c.Passed++
		case e.Check.Required:
			c.Failed++
		default:
			c.Warnings++
		}
	}
	return c
}

func blocking(e Entry) bool {
	return e.Check.Required && !e.Result.OK()
}

// Run evaluates checks one at a time, in order, printing each result
// before starting the next.
func Run(ctx context.Context, checks []check.Check, p *output.Printer) RunReport {
	report := RunReport{Results: make([]Entry, 0, len(checks))}
	for _, c := range checks {
		start := time.Now()
		result := evaluate(ctx, c).Normalize()
		slog.Debug("check finished",
			"check", c.Name,
			"required", c.Required,
			"status", result.Status,
			"elapsed", time.Since(start),
		)

		p.PrintResult(c.Name, c.Required, result)
		report.Results = append(report.Results, Entry{Check: c, Result: result})
	}
	return report
}

// evaluate runs a single check, converting a panic or a missing evaluator
// into a failed Result.
func evaluate(ctx context.Context, c check.Check) (result check.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("check panicked", "check", c.Name, "panic", r)
			result = check.Fail(fmt.Sprintf("Check error: %v", r), "")
		}
	}()

	if c.Evaluator == nil {
		return check.Fail("Check error: no evaluator", "")
	}
	return c.Evaluator.Evaluate(ctx)
}
