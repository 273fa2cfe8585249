package types

import "fmt"

// Severity is the risk level ZAP assigns to an alert.
type Severity string

const (
	SeverityHigh          Severity = "High"
	SeverityMedium        Severity = "Medium"
	SeverityLow           Severity = "Low"
	SeverityInformational Severity = "Informational"
)

// severityRanks orders the scale; higher rank means more severe.
var severityRanks = map[Severity]int{
	SeverityInformational: 1,
	SeverityLow:           2,
	SeverityMedium:        3,
	SeverityHigh:          4,
}

// SeverityRank returns a numeric rank for comparisons (higher = more severe).
// Unknown severities rank below Informational.
func SeverityRank(s Severity) int {
	return severityRanks[s]
}

// SeverityNames lists the valid severity names from least to most severe.
func SeverityNames() []string {
	return []string{
		string(SeverityInformational),
		string(SeverityLow),
		string(SeverityMedium),
		string(SeverityHigh),
	}
}

// ParseSeverity validates a severity name as passed on the command line.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(raw)
	if _, ok := severityRanks[s]; !ok {
		return "", fmt.Errorf("invalid alert level %q (valid: Informational, Low, Medium, High)", raw)
	}
	return s, nil
}

// Alert is a single finding reported by the ZAP daemon. Alerts are
// immutable snapshots; the CLI filters and counts them but never
// mutates them.
type Alert struct {
	Name       string   `json:"alert"`
	Risk       Severity `json:"risk"`
	URL        string   `json:"url"`
	CWEID      string   `json:"cweid,omitempty"`
	Confidence string   `json:"confidence,omitempty"`
	Param      string   `json:"param,omitempty"`
	Evidence   string   `json:"evidence,omitempty"`
}

// FilterBySeverity returns the alerts at or above the given severity,
// preserving the daemon's return order.
func FilterBySeverity(alerts []Alert, min Severity) []Alert {
	floor := SeverityRank(min)
	filtered := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if SeverityRank(a.Risk) >= floor {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
