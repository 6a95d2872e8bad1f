package logview

import (
	"sort"

	"github.com/calvale/gander/internal/logsource"
)

// deriveColumns computes the table's column set from the entries: core
// fields that at least one entry carries, in their canonical order,
// followed by the union of extra keys sorted alphabetically.
func deriveColumns(entries []logsource.Entry) []string {
	if len(entries) == 0 {
		return nil
	}

	columns := make([]string, 0, 12)
	for _, name := range logsource.CoreFields() {
		for _, entry := range entries {
			if _, ok := entry.Field(name); ok {
				columns = append(columns, name)
				break
			}
		}
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		for key := range entry.Extra {
			seen[key] = true
		}
	}
	if len(seen) == 0 {
		return columns
	}
	extras := make([]string, 0, len(seen))
	for key := range seen {
		extras = append(extras, key)
	}
	sort.Strings(extras)
	return append(columns, extras...)
}
