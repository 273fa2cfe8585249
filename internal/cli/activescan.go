package cli

import (
	"strings"

	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var (
	activeScanScannersFlag  string
	activeScanRecursiveFlag bool
	activeScanContextFlag   string
	activeScanUserFlag      string
)

var activeScanCmd = &cobra.Command{
	Use:   "active-scan <url>",
	Short: "Run an Active Scan",
	Long: `Run an Active Scan against a URL.

The URL to be scanned must be in ZAP's site tree, i.e. it should have
already been opened using the open-url command or found by running the
spider command.`,
	Args: cobra.ExactArgs(1),
	RunE: runActiveScan,
}

func init() {
	activeScanCmd.Flags().StringVarP(&activeScanScannersFlag, "scanners", "s", "",
		"comma separated list of scanner IDs and/or groups to use in the scan (groups: all, "+
			strings.Join(scan.ScannerGroups(), ", ")+")")
	activeScanCmd.Flags().BoolVarP(&activeScanRecursiveFlag, "recursive", "r", false, "make scan recursive")
	activeScanCmd.Flags().StringVarP(&activeScanContextFlag, "context-name", "c", "", "context to use if provided")
	activeScanCmd.Flags().StringVarP(&activeScanUserFlag, "user-name", "u", "",
		"run scan as this user if provided; requires --context-name")
	rootCmd.AddCommand(activeScanCmd)
}

func runActiveScan(cmd *cobra.Command, args []string) error {
	if err := requireContextForUser(activeScanContextFlag, activeScanUserFlag); err != nil {
		return err
	}

	var scannerIDs []string
	if activeScanScannersFlag != "" {
		ids, err := scan.ResolveScanners(splitTokens(activeScanScannersFlag))
		if err != nil {
			return err
		}
		scannerIDs = ids
	}

	console.Info("Running an active scan...")

	if len(scannerIDs) > 0 {
		if err := zapClient.SetEnabledScanners(cmd.Context(), scannerIDs); err != nil {
			return err
		}
	}

	return zapClient.ActiveScan(cmd.Context(), args[0], activeScanRecursiveFlag, activeScanContextFlag, activeScanUserFlag)
}

// splitTokens splits a comma separated flag value into trimmed tokens.
func splitTokens(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
