package doctor

import "github.com/vertti/devdoctor/pkg/output"

// Exit codes returned by Finalize.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Finalizer prints the closing summary of a run.
type Finalizer struct {
	QuickStart []string // hint lines printed after a successful run
	Rerun      string   // command the operator re-runs after fixing issues
}

// Finalize prints the closing banner and returns the process exit code. The
// code depends only on whether a required check failed.
func (f *Finalizer) Finalize(report RunReport, p *output.Printer) int {
	if report.HasBlockingFailure() {
		p.PrintFailure(report.Counts(), f.Rerun)
		return ExitFailure
	}
	p.PrintSuccess(report.Counts(), f.QuickStart)
	return ExitOK
}
