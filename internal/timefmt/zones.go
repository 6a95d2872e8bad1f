package timefmt

import "strings"

// Zone describes one entry of the static timezone table: an IANA
// identifier, a human label for the settings picker, and the zone's
// standard-time offset for display alongside the label.
type Zone struct {
	ID     string
	Label  string
	Offset string
}

// zoneTable is the fixed set of zones offered by the settings picker.
// Offsets are standard time; DST shifts are handled by the zone
// database at formatting time, the table is labels only.
var zoneTable = []Zone{
	{ID: "UTC", Label: "UTC", Offset: "+00:00"},
	{ID: "America/New_York", Label: "Eastern Time (US)", Offset: "-05:00"},
	{ID: "America/Chicago", Label: "Central Time (US)", Offset: "-06:00"},
	{ID: "America/Denver", Label: "Mountain Time (US)", Offset: "-07:00"},
	{ID: "America/Phoenix", Label: "Arizona", Offset: "-07:00"},
	{ID: "America/Los_Angeles", Label: "Pacific Time (US)", Offset: "-08:00"},
	{ID: "America/Anchorage", Label: "Alaska", Offset: "-09:00"},
	{ID: "Pacific/Honolulu", Label: "Hawaii", Offset: "-10:00"},
	{ID: "America/Toronto", Label: "Toronto", Offset: "-05:00"},
	{ID: "America/Mexico_City", Label: "Mexico City", Offset: "-06:00"},
	{ID: "America/Sao_Paulo", Label: "São Paulo", Offset: "-03:00"},
	{ID: "Europe/London", Label: "London", Offset: "+00:00"},
	{ID: "Europe/Dublin", Label: "Dublin", Offset: "+00:00"},
	{ID: "Europe/Paris", Label: "Paris", Offset: "+01:00"},
	{ID: "Europe/Berlin", Label: "Berlin", Offset: "+01:00"},
	{ID: "Europe/Madrid", Label: "Madrid", Offset: "+01:00"},
	{ID: "Europe/Rome", Label: "Rome", Offset: "+01:00"},
	{ID: "Europe/Warsaw", Label: "Warsaw", Offset: "+01:00"},
	{ID: "Europe/Kyiv", Label: "Kyiv", Offset: "+02:00"},
	{ID: "Europe/Istanbul", Label: "Istanbul", Offset: "+03:00"},
	{ID: "Europe/Moscow", Label: "Moscow", Offset: "+03:00"},
	{ID: "Africa/Cairo", Label: "Cairo", Offset: "+02:00"},
	{ID: "Africa/Johannesburg", Label: "Johannesburg", Offset: "+02:00"},
	{ID: "Asia/Dubai", Label: "Dubai", Offset: "+04:00"},
	{ID: "Asia/Karachi", Label: "Karachi", Offset: "+05:00"},
	{ID: "Asia/Kolkata", Label: "India", Offset: "+05:30"},
	{ID: "Asia/Dhaka", Label: "Dhaka", Offset: "+06:00"},
	{ID: "Asia/Bangkok", Label: "Bangkok", Offset: "+07:00"},
	{ID: "Asia/Shanghai", Label: "Shanghai", Offset: "+08:00"},
	{ID: "Asia/Hong_Kong", Label: "Hong Kong", Offset: "+08:00"},
	{ID: "Asia/Singapore", Label: "Singapore", Offset: "+08:00"},
	{ID: "Asia/Tokyo", Label: "Tokyo", Offset: "+09:00"},
	{ID: "Asia/Seoul", Label: "Seoul", Offset: "+09:00"},
	{ID: "Australia/Perth", Label: "Perth", Offset: "+08:00"},
	{ID: "Australia/Sydney", Label: "Sydney", Offset: "+10:00"},
	{ID: "Pacific/Auckland", Label: "Auckland", Offset: "+12:00"},
}

var zoneIndex = buildZoneIndex()

func buildZoneIndex() map[string]Zone {
	index := make(map[string]Zone, len(zoneTable))
	for _, z := range zoneTable {
		index[z.ID] = z
	}
	return index
}

// Zones returns the static zone table in picker order.
func Zones() []Zone {
	out := make([]Zone, len(zoneTable))
	copy(out, zoneTable)
	return out
}

// ZoneLabel returns the human label for a zone identifier. Identifiers
// outside the table fall back to the identifier itself with
// underscores replaced by spaces.
func ZoneLabel(zoneID string) string {
	if z, ok := zoneIndex[zoneID]; ok {
		return z.Label
	}
	return strings.ReplaceAll(zoneID, "_", " ")
}
