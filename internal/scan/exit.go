package scan

// Process exit codes.
const (
	ExitOK     = 0
	ExitAlerts = 1
	ExitError  = 2
)

// ExitCode derives the process exit code from the count of qualifying
// alerts, the per-command soft-fail flag, and the process-wide soft-fail
// override loaded from configuration. The override is passed in
// explicitly so the policy stays pure.
func ExitCode(alertCount int, softFail, override bool) int {
	if alertCount == 0 {
		return ExitOK
	}
	if softFail || override {
		return ExitOK
	}
	return ExitAlerts
}
