package cli

import (
	"fmt"
	"regexp"

	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude <pattern>",
	Short: "Exclude a pattern from all scanners",
	Long:  "Exclude a pattern from the proxy, spider and active scanner.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := regexp.Compile(args[0]); err != nil {
			return &scan.UsageError{Msg: fmt.Sprintf("invalid regex %q: %v", args[0], err)}
		}
		return zapClient.ExcludeFromAll(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(excludeCmd)
}
