package cli

import (
	"os"
	"strings"

	"github.com/buemura/zapcli/internal/output"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/buemura/zapcli/pkg/types"
	"github.com/spf13/cobra"
)

var (
	qsSelfContainedFlag bool
	qsScannersFlag      string
	qsSpiderFlag        bool
	qsAjaxSpiderFlag    bool
	qsRecursiveFlag     bool
	qsAlertLevelFlag    string
	qsExcludeFlag       string
	qsStartOptionsFlag  string
	qsFormatFlag        string
	qsContextFlag       string
	qsUserFlag          string
	qsSoftFailFlag      bool
)

var quickScanCmd = &cobra.Command{
	Use:   "quick-scan <url>",
	Short: "Run a quick scan",
	Long: `Run a quick scan of a site by opening a URL, optionally spidering the
URL, running an Active Scan, and reporting any issues found.

This command contains most scan options as parameters, so you can do
everything in one go.

If any alerts are found for the given alert level, this command will
exit with a status code of 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuickScan,
}

func init() {
	quickScanCmd.Flags().BoolVar(&qsSelfContainedFlag, "self-contained", false,
		"start the daemon, open the URL, scan it, and shutdown the daemon when done")
	quickScanCmd.Flags().StringVarP(&qsScannersFlag, "scanners", "s", "",
		"comma separated list of scanner IDs and/or groups to use in the scan (groups: all, "+
			strings.Join(scan.ScannerGroups(), ", ")+")")
	quickScanCmd.Flags().BoolVar(&qsSpiderFlag, "spider", false, "run the spider before running the scan")
	quickScanCmd.Flags().BoolVar(&qsAjaxSpiderFlag, "ajax-spider", false, "run the AJAX Spider before running the scan")
	quickScanCmd.Flags().BoolVarP(&qsRecursiveFlag, "recursive", "r", false, "make scan recursive")
	quickScanCmd.Flags().StringVarP(&qsAlertLevelFlag, "alert-level", "l", "High",
		"minimum alert level to include in report")
	quickScanCmd.Flags().StringVarP(&qsExcludeFlag, "exclude", "e", "",
		"regex to exclude from all aspects of the scan")
	quickScanCmd.Flags().StringVarP(&qsStartOptionsFlag, "start-options", "o", "",
		"extra options to pass to the ZAP start command when --self-contained is used")
	quickScanCmd.Flags().StringVarP(&qsFormatFlag, "output-format", "f", "table",
		"output format to print the alerts: table, json")
	quickScanCmd.Flags().StringVarP(&qsContextFlag, "context-name", "c", "", "context to use if provided")
	quickScanCmd.Flags().StringVarP(&qsUserFlag, "user-name", "u", "",
		"run scan as this user if provided; requires --context-name")
	quickScanCmd.Flags().BoolVar(&qsSoftFailFlag, "soft-fail", false,
		"run scans but suppress the alert-count exit code")
	rootCmd.AddCommand(quickScanCmd)
}

func runQuickScan(cmd *cobra.Command, args []string) error {
	formatter, err := output.GetFormatter(qsFormatFlag)
	if err != nil {
		return &scan.UsageError{Msg: err.Error()}
	}

	var scanners []string
	if qsScannersFlag != "" {
		scanners = splitTokens(qsScannersFlag)
	}

	opts := scan.Options{
		SelfContained: qsSelfContainedFlag,
		StartOptions:  qsStartOptionsFlag,
		Scanners:      scanners,
		Exclude:       qsExcludeFlag,
		Spider:        qsSpiderFlag,
		AjaxSpider:    qsAjaxSpiderFlag,
		Recursive:     qsRecursiveFlag,
		ContextName:   qsContextFlag,
		UserName:      qsUserFlag,
		AlertLevel:    types.Severity(qsAlertLevelFlag),
		SoftFail:      qsSoftFailFlag,
	}

	orchestrator := scan.NewOrchestrator(zapClient)
	orchestrator.StartTimeout = daemonStartTimeout
	orchestrator.PollInterval = pollInterval

	outcome, err := orchestrator.QuickScan(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(os.Stdout, outcome.Alerts); err != nil {
		return err
	}

	if code := scan.ExitCode(len(outcome.Alerts), opts.SoftFail, appConfig.SoftFail); code != scan.ExitOK {
		return &statusError{code: code}
	}
	return nil
}
