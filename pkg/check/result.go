package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Status  Status // OK or FAIL
	Message string // e.g. "v20.11.0", "Not installed"
	Fix     string // remediation, only set on failure
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Pass returns a passing result.
func Pass(message string) Result {
	return Result{Status: StatusOK, Message: message}
}

// Fail returns a failing result. fix may be empty when no corrective
// action is known.
func Fail(message, fix string) Result {
	return Result{Status: StatusFail, Message: message, Fix: fix}
}

// Normalize drops any fix from a passing result.
func (r Result) Normalize() Result {
	if r.OK() {
		r.Fix = ""
	}
	return r
}
