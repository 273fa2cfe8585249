package cli

import (
	"time"

	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var statusTimeoutFlag int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check if ZAP is running",
	Long: `Check if ZAP is running and able to receive API calls.

You can provide a timeout option which is the amount of time in seconds
the command should wait for ZAP to start if it is not currently running.
This is useful to run before calling other commands if ZAP was started
outside of zap-cli, for example:

    zap-cli status -t 60 && zap-cli open-url "http://127.0.0.1/"

Exits with code 2 if ZAP is either not running or the command timed out
waiting for ZAP to start.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVarP(&statusTimeoutFlag, "timeout", "t", 0,
		"wait this number of seconds for ZAP to have started")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	timeout := time.Duration(statusTimeoutFlag) * time.Second

	err := scan.WaitForReady(cmd.Context(), zapClient, timeout, pollInterval)
	if err != nil {
		console.Error("ZAP is not running")
		return &statusError{code: scan.ExitError}
	}

	console.Info("ZAP is running")
	return nil
}
