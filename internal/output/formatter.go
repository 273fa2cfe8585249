// Package output renders collected alerts for display. Formatters never
// change which alerts are included, only their textual rendering, and
// they keep the daemon's return order.
package output

import (
	"fmt"
	"io"

	"github.com/buemura/zapcli/pkg/types"
)

// Formatter renders a set of alerts to a writer.
type Formatter interface {
	Format(w io.Writer, alerts []types.Alert) error
}

// GetFormatter returns the appropriate formatter for the given format string.
func GetFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: table, json)", format)
	}
}
