package contract

import (
	"errors"
	"fmt"
)

// Sentinel errors used to select the process exit code without string matching.
var (
	// ErrNotARepository means the target path is not under version control.
	// The run aborts before any listing and signals a failure exit.
	ErrNotARepository = errors.New("not a git repository")

	// ErrHighSeverityFindings means the scan completed and found at least one
	// HIGH severity issue. The report has already been rendered; the error
	// only carries the failure exit out of the run controller.
	ErrHighSeverityFindings = errors.New("high severity findings detected")
)

// InvalidPatternError reports a user-supplied pattern that failed to compile.
// It is surfaced at startup, before any scanning begins.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
