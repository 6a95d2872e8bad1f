// Package timefmt renders timestamps for display: an enumerated set of
// date and time format tokens, timezone conversion, and a static table
// of common zones for the settings picker. Unknown tokens and zones
// fall back instead of failing so a stale stored preference can never
// break rendering.
package timefmt

import "time"

// Time format tokens.
const (
	Time24h    = "24h"
	Time24hSec = "24h-seconds"
	Time12h    = "12h"
	Time12hSec = "12h-seconds"
)

// Date format tokens.
const (
	DateISO     = "iso"
	DateUS      = "us"
	DateUK      = "uk"
	DateAbbrev  = "abbrev"
	DateVerbose = "verbose"
)

// Locale defaults used when a token is empty or unknown.
const (
	DefaultTimeToken = Time24hSec
	DefaultDateToken = DateAbbrev
)

// TimeTokens lists the selectable time tokens in cycling order.
func TimeTokens() []string {
	return []string{Time24h, Time24hSec, Time12h, Time12hSec}
}

// DateTokens lists the selectable date tokens in cycling order.
func DateTokens() []string {
	return []string{DateISO, DateUS, DateUK, DateAbbrev, DateVerbose}
}

// TimeLayout maps a time token to its Go layout string.
func TimeLayout(token string) string {
	switch token {
	case Time24h:
		return "15:04"
	case Time24hSec:
		return "15:04:05"
	case Time12h:
		return "3:04 PM"
	case Time12hSec:
		return "3:04:05 PM"
	default:
		return TimeLayout(DefaultTimeToken)
	}
}

// DateLayout maps a date token to its Go layout string.
func DateLayout(token string) string {
	switch token {
	case DateISO:
		return "2006-01-02"
	case DateUS:
		return "01/02/2006"
	case DateUK:
		return "02/01/2006"
	case DateAbbrev:
		return "Jan 2, 2006"
	case DateVerbose:
		return "Monday, January 2, 2006"
	default:
		return DateLayout(DefaultDateToken)
	}
}

// FormatTime renders the clock portion of t using the given token.
func FormatTime(t time.Time, token string) string {
	return t.Format(TimeLayout(token))
}

// FormatDate renders the calendar portion of t using the given token.
func FormatDate(t time.Time, token string) string {
	return t.Format(DateLayout(token))
}

// FormatStamp converts t to the named zone and renders "date time"
// with the given tokens. An unresolvable zone falls back to UTC.
func FormatStamp(t time.Time, zoneID, dateToken, timeToken string) string {
	local := t.In(LoadZone(zoneID))
	return local.Format(DateLayout(dateToken)) + " " + local.Format(TimeLayout(timeToken))
}

// LoadZone resolves an IANA zone identifier, falling back to UTC when
// the identifier is empty or unknown.
func LoadZone(zoneID string) *time.Location {
	if zoneID == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return time.UTC
	}
	return loc
}
