package cli

import (
	"os"

	"github.com/buemura/zapcli/internal/output"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/buemura/zapcli/pkg/types"
	"github.com/spf13/cobra"
)

var (
	alertsLevelFlag    string
	alertsFormatFlag   string
	alertsExitCodeFlag bool
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show alerts at the given alert level",
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().StringVarP(&alertsLevelFlag, "alert-level", "l", "High",
		"minimum alert level to include in report (Informational, Low, Medium, High)")
	alertsCmd.Flags().StringVarP(&alertsFormatFlag, "output-format", "f", "table",
		"output format to print the alerts: table, json")
	alertsCmd.Flags().BoolVar(&alertsExitCodeFlag, "exit-code", true,
		"whether to set a non-zero exit code when there are any alerts of the specified level")
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	level, err := types.ParseSeverity(alertsLevelFlag)
	if err != nil {
		return &scan.UsageError{Msg: err.Error()}
	}

	formatter, err := output.GetFormatter(alertsFormatFlag)
	if err != nil {
		return &scan.UsageError{Msg: err.Error()}
	}

	alerts, err := zapClient.Alerts(cmd.Context())
	if err != nil {
		return err
	}
	filtered := types.FilterBySeverity(alerts, level)

	if err := formatter.Format(os.Stdout, filtered); err != nil {
		return err
	}

	if !alertsExitCodeFlag {
		return nil
	}
	if code := scan.ExitCode(len(filtered), false, appConfig.SoftFail); code != scan.ExitOK {
		return &statusError{code: code}
	}
	return nil
}
