package check

import "context"

// Evaluator inspects the environment and returns exactly one Result.
// Implementations convert their own failures into a failing Result
// instead of returning errors.
//
// Implementations:
//   - toolcheck.Check: verifies a tool is installed at a minimum major version
//   - filecheck.Check: checks a file or directory exists
//   - jsoncheck.Check: checks the project descriptor is present and valid
//   - cmdcheck.Check: runs a validation command under a timeout
//   - gitcheck.Check: checks the project is a git repository
type Evaluator interface {
	Evaluate(ctx context.Context) Result
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(ctx context.Context) Result

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx context.Context) Result {
	return f(ctx)
}

// Check is a named unit of verification. Required checks block a
// successful run when they fail; the rest are advisory.
type Check struct {
	Name      string
	Required  bool
	Evaluator Evaluator
}
