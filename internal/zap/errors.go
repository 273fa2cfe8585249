package zap

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotRunning indicates the daemon did not respond to a liveness probe
// and no wait was requested.
var ErrNotRunning = errors.New("ZAP daemon is not running")

// TimeoutError indicates the daemon did not become live within the
// requested wait.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for the ZAP daemon to start", e.After)
}

// RemoteError wraps a failed call against the daemon API.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("zap api %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ReportError wraps a failure rendering or writing a report.
type ReportError struct {
	Format string
	Err    error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("rendering %s report: %v", e.Format, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }
