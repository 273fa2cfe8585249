package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var startOptionsFlag string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ZAP daemon",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVarP(&startOptionsFlag, "start-options", "o", "",
		`extra options to pass to the ZAP start command, e.g. "-config api.key=12345"`)
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	console.Info("Starting ZAP daemon")
	if err := zapClient.Start(cmd.Context(), startOptionsFlag); err != nil {
		return err
	}
	return scan.WaitForReady(cmd.Context(), zapClient, daemonStartTimeout, pollInterval)
}
