package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var (
	spiderContextFlag string
	spiderUserFlag    string
)

var spiderCmd = &cobra.Command{
	Use:   "spider <url>",
	Short: "Run the spider against a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpider,
}

func init() {
	spiderCmd.Flags().StringVarP(&spiderContextFlag, "context-name", "c", "", "context to use if provided")
	spiderCmd.Flags().StringVarP(&spiderUserFlag, "user-name", "u", "",
		"run scan as this user if provided; requires --context-name")
	rootCmd.AddCommand(spiderCmd)
}

func runSpider(cmd *cobra.Command, args []string) error {
	if err := requireContextForUser(spiderContextFlag, spiderUserFlag); err != nil {
		return err
	}

	console.Info("Running spider...")
	return zapClient.Spider(cmd.Context(), args[0], spiderContextFlag, spiderUserFlag)
}

// requireContextForUser rejects a user name without a context name
// before any remote call is made.
func requireContextForUser(contextName, userName string) error {
	if userName != "" && contextName == "" {
		return &scan.UsageError{Msg: "a context name is required when a user name is provided"}
	}
	return nil
}
