package scan

import (
	"fmt"
	"sort"
	"strings"
)

// scannerGroups maps named scanner groups to the ZAP scanner IDs they
// expand to. "all" is not listed here; it is the derived union of every
// group.
var scannerGroups = map[string][]string{
	"xss":  {"40012", "40014", "40016", "40017"},
	"sqli": {"40018"},
}

// ScannerGroups returns the known group names in sorted order.
func ScannerGroups() []string {
	names := make([]string, 0, len(scannerGroups))
	for name := range scannerGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupIDs returns the scanner IDs of a named group, or nil when the
// group is unknown.
func GroupIDs(name string) []string {
	return scannerGroups[name]
}

// ResolveScanners expands a list of scanner tokens into concrete scanner
// IDs. A token is either a numeric scanner ID, a group name, or "all"
// (the union of every group). Duplicates collapse; order of first
// appearance is kept. Unknown tokens or an empty result are usage
// errors, caught before any remote call.
func ResolveScanners(tokens []string) ([]string, error) {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		switch {
		case token == "":
			continue
		case token == "all":
			for _, group := range ScannerGroups() {
				for _, id := range scannerGroups[group] {
					add(id)
				}
			}
		case isNumeric(token):
			add(token)
		default:
			group, ok := scannerGroups[token]
			if !ok {
				return nil, &UsageError{Msg: fmt.Sprintf(
					"invalid scanner %q (valid groups: all, %s)", token, strings.Join(ScannerGroups(), ", "))}
			}
			for _, id := range group {
				add(id)
			}
		}
	}

	if len(ids) == 0 {
		return nil, &UsageError{Msg: "scanner list resolved to no scanner IDs"}
	}
	return ids, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
