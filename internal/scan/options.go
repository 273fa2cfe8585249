// Package scan contains the orchestration core: the quick-scan state
// machine, scanner-group resolution, daemon readiness polling, and the
// exit-code policy.
package scan

import (
	"fmt"
	"regexp"

	"github.com/buemura/zapcli/pkg/types"
)

// UsageError is an invalid option combination or malformed input,
// detected before any remote call is made.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Options is the configuration record for one quick-scan run.
type Options struct {
	// SelfContained starts the daemon before scanning and shuts it
	// down afterwards.
	SelfContained bool
	// StartOptions are extra daemon command-line options used when
	// SelfContained is set.
	StartOptions string

	// Scanners are raw scanner tokens (IDs, group names, or "all").
	Scanners []string
	// Exclude is a regex excluded from every scan subsystem.
	Exclude string

	Spider     bool
	AjaxSpider bool
	Recursive  bool

	ContextName string
	UserName    string

	// AlertLevel is the minimum severity included in the collected
	// alert set. Defaults to High.
	AlertLevel types.Severity

	// SoftFail suppresses the alert-count exit code for this run.
	SoftFail bool
}

// resolve validates the options eagerly, before any remote side effect,
// and expands the scanner tokens. The returned ID list is empty when no
// scanner selection was supplied.
func (o *Options) resolve() ([]string, error) {
	if o.UserName != "" && o.ContextName == "" {
		return nil, &UsageError{Msg: "a context name is required when a user name is provided"}
	}

	if o.Exclude != "" {
		if _, err := regexp.Compile(o.Exclude); err != nil {
			return nil, &UsageError{Msg: fmt.Sprintf("invalid exclude regex %q: %v", o.Exclude, err)}
		}
	}

	if o.AlertLevel == "" {
		o.AlertLevel = types.SeverityHigh
	} else if _, err := types.ParseSeverity(string(o.AlertLevel)); err != nil {
		return nil, &UsageError{Msg: err.Error()}
	}

	if len(o.Scanners) == 0 {
		return nil, nil
	}
	return ResolveScanners(o.Scanners)
}
