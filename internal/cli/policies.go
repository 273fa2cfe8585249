package cli

import (
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var policyIDsFlag string

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Enable active-scan policies",
}

var policiesEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Set the enabled active-scan policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := splitTokens(policyIDsFlag)
		if len(ids) == 0 {
			return &scan.UsageError{Msg: "--policy-ids is required"}
		}
		return zapClient.SetEnabledPolicies(cmd.Context(), ids)
	},
}

func init() {
	policiesEnableCmd.Flags().StringVar(&policyIDsFlag, "policy-ids", "",
		"comma separated list of policy IDs to enable")
	policiesCmd.AddCommand(policiesEnableCmd)
	rootCmd.AddCommand(policiesCmd)
}
