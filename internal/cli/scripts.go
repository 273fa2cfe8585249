package cli

import (
	"fmt"
	"os"

	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/output"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/spf13/cobra"
)

var (
	scriptNameFlag        string
	scriptTypeFlag        string
	scriptEngineFlag      string
	scriptFilePathFlag    string
	scriptDescriptionFlag string
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Manage scripts loaded in the ZAP daemon",
}

var scriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scripts currently loaded in ZAP",
	RunE: func(cmd *cobra.Command, args []string) error {
		scripts, err := zapClient.ListScripts(cmd.Context())
		if err != nil {
			return err
		}
		output.WriteScriptTable(os.Stdout, scripts)
		return nil
	},
}

var scriptsListEnginesCmd = &cobra.Command{
	Use:   "list-engines",
	Short: "List script engines available in ZAP",
	RunE: func(cmd *cobra.Command, args []string) error {
		engines, err := zapClient.ListScriptEngines(cmd.Context())
		if err != nil {
			return err
		}
		for _, engine := range engines {
			fmt.Println(engine)
		}
		return nil
	},
}

var scriptsLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a script from a file into ZAP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scriptNameFlag == "" || scriptTypeFlag == "" || scriptEngineFlag == "" || scriptFilePathFlag == "" {
			return &scan.UsageError{Msg: "--name, --script-type, --engine, and --file-path are required"}
		}
		err := zapClient.LoadScript(cmd.Context(), scriptNameFlag, scriptTypeFlag,
			scriptEngineFlag, scriptFilePathFlag, scriptDescriptionFlag)
		if err != nil {
			return err
		}
		console.Info("Script %q loaded", scriptNameFlag)
		return nil
	},
}

var scriptsEnableCmd = &cobra.Command{
	Use:   "enable [script-name]",
	Short: "Enable a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := zapClient.EnableScript(cmd.Context(), args[0]); err != nil {
			return err
		}
		console.Info("Script %q enabled", args[0])
		return nil
	},
}

var scriptsDisableCmd = &cobra.Command{
	Use:   "disable [script-name]",
	Short: "Disable a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := zapClient.DisableScript(cmd.Context(), args[0]); err != nil {
			return err
		}
		console.Info("Script %q disabled", args[0])
		return nil
	},
}

var scriptsRemoveCmd = &cobra.Command{
	Use:   "remove [script-name]",
	Short: "Remove a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := zapClient.RemoveScript(cmd.Context(), args[0]); err != nil {
			return err
		}
		console.Info("Script %q removed", args[0])
		return nil
	},
}

func init() {
	scriptsLoadCmd.Flags().StringVar(&scriptNameFlag, "name", "", "name of the script")
	scriptsLoadCmd.Flags().StringVar(&scriptTypeFlag, "script-type", "", "type of the script, e.g. proxy or httpsender")
	scriptsLoadCmd.Flags().StringVar(&scriptEngineFlag, "engine", "", "script engine to run the script with")
	scriptsLoadCmd.Flags().StringVar(&scriptFilePathFlag, "file-path", "", "path to the script file")
	scriptsLoadCmd.Flags().StringVar(&scriptDescriptionFlag, "description", "", "description of the script")

	scriptsCmd.AddCommand(scriptsListCmd)
	scriptsCmd.AddCommand(scriptsListEnginesCmd)
	scriptsCmd.AddCommand(scriptsLoadCmd)
	scriptsCmd.AddCommand(scriptsEnableCmd)
	scriptsCmd.AddCommand(scriptsDisableCmd)
	scriptsCmd.AddCommand(scriptsRemoveCmd)
	rootCmd.AddCommand(scriptsCmd)
}
