package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage sessions",
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session",
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Debug("Starting a new session")
		return zapClient.NewSession(cmd.Context())
	},
}

var sessionSaveCmd = &cobra.Command{
	Use:   "save <file-path>",
	Short: "Save the session to the given file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Debug("Saving the session to %q", args[0])
		return zapClient.SaveSession(cmd.Context(), args[0])
	},
}

var sessionLoadCmd = &cobra.Command{
	Use:   "load <file-path>",
	Short: "Load a given session file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Debug("Loading session from %q", args[0])
		return zapClient.LoadSession(cmd.Context(), args[0])
	},
}

func init() {
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionSaveCmd)
	sessionCmd.AddCommand(sessionLoadCmd)
	rootCmd.AddCommand(sessionCmd)
}
