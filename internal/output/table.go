package output

import (
	"fmt"
	"io"

	"github.com/buemura/zapcli/pkg/types"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders alerts as a colored terminal table.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, alerts []types.Alert) error {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Risk", "Alert", "CWE", "URL"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	counts := map[types.Severity]int{}

	for _, alert := range alerts {
		counts[alert.Risk]++
		table.Append([]string{colorRisk(alert.Risk), alert.Name, alert.CWEID, alert.URL})
	}

	table.Render()

	fmt.Fprintf(w, "  Summary: %s\n", formatSummary(counts))
	return nil
}

func colorRisk(s types.Severity) string {
	switch s {
	case types.SeverityHigh:
		return color.RedString(string(s))
	case types.SeverityMedium:
		return color.YellowString(string(s))
	case types.SeverityLow:
		return color.CyanString(string(s))
	case types.SeverityInformational:
		return color.WhiteString(string(s))
	default:
		return string(s)
	}
}

func formatSummary(counts map[types.Severity]int) string {
	total := 0
	for _, c := range counts {
		total += c
	}
	return fmt.Sprintf("%d alerts (%d high, %d medium, %d low, %d informational)",
		total,
		counts[types.SeverityHigh],
		counts[types.SeverityMedium],
		counts[types.SeverityLow],
		counts[types.SeverityInformational],
	)
}
