package output

import (
	"encoding/json"
	"io"

	"github.com/buemura/zapcli/pkg/types"
)

// JSONFormatter renders alerts as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, alerts []types.Alert) error {
	if alerts == nil {
		alerts = []types.Alert{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(alerts)
}
