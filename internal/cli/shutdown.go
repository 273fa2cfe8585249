package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/spf13/cobra"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Shutdown the ZAP daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Info("Shutting down ZAP daemon")
		return zapClient.Shutdown(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(shutdownCmd)
}
