package cli

import (
	"github.com/buemura/zapcli/internal/console"
	"github.com/spf13/cobra"
)

var ajaxSpiderCmd = &cobra.Command{
	Use:   "ajax-spider <url>",
	Short: "Run the AJAX Spider against a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Info("Running AJAX Spider...")
		return zapClient.AjaxSpider(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(ajaxSpiderCmd)
}
