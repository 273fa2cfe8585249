package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/spf13/cobra"
)

var openURLCmd = &cobra.Command{
	Use:   "open-url <url>",
	Short: "Open a URL using the ZAP proxy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Info("Accessing URL %s", args[0])
		return zapClient.OpenURL(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(openURLCmd)
}
