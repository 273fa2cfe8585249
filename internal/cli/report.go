package cli

import (
	"fmt"

	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/buemura/zapcli/internal/zap"
	"github.com/spf13/cobra"
)

var (
	reportOutputFlag string
	reportFormatFlag string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate XML, MD or HTML report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutputFlag, "output", "o", "", "output file for report")
	reportCmd.Flags().StringVarP(&reportFormatFlag, "output-format", "f", "xml", "report format: xml, html, md")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	format := zap.ReportFormat(reportFormatFlag)
	switch format {
	case zap.ReportXML, zap.ReportHTML, zap.ReportMarkdown:
	default:
		return &scan.UsageError{Msg: fmt.Sprintf("invalid report format %q (valid: xml, html, md)", reportFormatFlag)}
	}

	if err := zapClient.Report(cmd.Context(), format, reportOutputFlag); err != nil {
		return err
	}

	if reportOutputFlag != "" {
		console.Info("Report saved to %q", reportOutputFlag)
	}
	return nil
}
