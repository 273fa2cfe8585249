package cli

import (
	"fmt"
	"regexp"

	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var (
	contextNameFlag    string
	contextPatternFlag string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage contexts for the current session",
}

var contextNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return zapClient.NewContext(cmd.Context(), args[0])
	},
}

var contextIncludeCmd = &cobra.Command{
	Use:   "include",
	Short: "Include a pattern in a given context",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateContextPattern(); err != nil {
			return err
		}
		return zapClient.IncludeInContext(cmd.Context(), contextNameFlag, contextPatternFlag)
	},
}

var contextExcludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Exclude a pattern from a given context",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateContextPattern(); err != nil {
			return err
		}
		return zapClient.ExcludeFromContext(cmd.Context(), contextNameFlag, contextPatternFlag)
	},
}

func validateContextPattern() error {
	if contextNameFlag == "" {
		return &scan.UsageError{Msg: "--name is required"}
	}
	if _, err := regexp.Compile(contextPatternFlag); err != nil {
		return &scan.UsageError{Msg: fmt.Sprintf("invalid regex %q: %v", contextPatternFlag, err)}
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{contextIncludeCmd, contextExcludeCmd} {
		cmd.Flags().StringVarP(&contextNameFlag, "name", "n", "", "name of the context")
		cmd.Flags().StringVar(&contextPatternFlag, "pattern", "", "regex pattern to match")
	}
	contextCmd.AddCommand(contextNewCmd)
	contextCmd.AddCommand(contextIncludeCmd)
	contextCmd.AddCommand(contextExcludeCmd)
	rootCmd.AddCommand(contextCmd)
}
