package output

import (
	"fmt"
	"io"

	"github.com/buemura/zapcli/pkg/types"
	"github.com/olekukonko/tablewriter"
)

// WriteScriptTable renders the daemon's loaded scripts as a table.
func WriteScriptTable(w io.Writer, scripts []types.Script) {
	if len(scripts) == 0 {
		fmt.Fprintln(w, "No scripts.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Engine", "Enabled"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("│")

	for _, s := range scripts {
		table.Append([]string{s.Name, s.Type, s.Engine, s.Enabled})
	}

	table.Render()
}
