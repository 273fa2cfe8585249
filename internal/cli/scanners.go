package cli

import (
	"fmt"
	"strings"

	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var scannersListFlag string

var scannersCmd = &cobra.Command{
	Use:   "scanners",
	Short: "Enable, disable, or list scanner sets",
}

var scannersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known scanner groups and their IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, group := range scan.ScannerGroups() {
			fmt.Printf("%s: %s\n", group, strings.Join(scan.GroupIDs(group), ", "))
		}
		return nil
	},
}

var scannersEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the given scanners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := scan.ResolveScanners(splitTokens(scannersListFlag))
		if err != nil {
			return err
		}
		return zapClient.EnableScanners(cmd.Context(), ids)
	},
}

var scannersDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the given scanners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := scan.ResolveScanners(splitTokens(scannersListFlag))
		if err != nil {
			return err
		}
		return zapClient.DisableScanners(cmd.Context(), ids)
	},
}

func init() {
	scannersCmd.PersistentFlags().StringVarP(&scannersListFlag, "scanners", "s", "",
		"comma separated list of scanner IDs and/or groups")
	scannersCmd.AddCommand(scannersListCmd)
	scannersCmd.AddCommand(scannersEnableCmd)
	scannersCmd.AddCommand(scannersDisableCmd)
	rootCmd.AddCommand(scannersCmd)
}
