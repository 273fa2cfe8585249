package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of zap-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zap-cli version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
