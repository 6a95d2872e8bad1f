package logview

import (
	"sort"
	"strconv"
	"strings"

	"github.com/calvale/gander/internal/logsource"
)

// sortRows stably sorts the row indexes ascending by the column's raw
// value. Descending order is produced by the caller reversing the
// result, so it is the exact reverse of the ascending order, ties
// included.
func sortRows(rows []int, entries []logsource.Entry, column string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return compareByColumn(entries[rows[i]], entries[rows[j]], column) < 0
	})
}

// compareByColumn orders two entries by a column's raw value:
// timestamps chronologically, values that both parse as numbers
// numerically, everything else case-insensitively. Entries missing the
// field order first.
func compareByColumn(a, b logsource.Entry, column string) int {
	if column == "timestamp" {
		return a.Timestamp.Compare(b.Timestamp)
	}

	av, _ := a.Field(column)
	bv, _ := b.Field(column)

	if an, aok := parseNumber(av); aok {
		if bn, bok := parseNumber(bv); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
}

func parseNumber(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
