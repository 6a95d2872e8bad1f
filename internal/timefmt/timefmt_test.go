package timefmt

import (
	"testing"
	"time"
)

var stamp = time.Date(2026, 8, 9, 14, 7, 9, 0, time.UTC)

func TestFormatTime_Tokens(t *testing.T) {
	cases := map[string]string{
		Time24h:    "14:07",
		Time24hSec: "14:07:09",
		Time12h:    "2:07 PM",
		Time12hSec: "2:07:09 PM",
	}
	for token, want := range cases {
		if got := FormatTime(stamp, token); got != want {
			t.Fatalf("FormatTime(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestFormatDate_Tokens(t *testing.T) {
	cases := map[string]string{
		DateISO:     "2026-08-09",
		DateUS:      "08/09/2026",
		DateUK:      "09/08/2026",
		DateAbbrev:  "Aug 9, 2026",
		DateVerbose: "Sunday, August 9, 2026",
	}
	for token, want := range cases {
		if got := FormatDate(stamp, token); got != want {
			t.Fatalf("FormatDate(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestUnknownTokensFallBackToDefaults(t *testing.T) {
	if got, want := FormatTime(stamp, "sundial"), FormatTime(stamp, DefaultTimeToken); got != want {
		t.Fatalf("FormatTime(unknown) = %q, want default %q", got, want)
	}
	if got, want := FormatDate(stamp, ""), FormatDate(stamp, DefaultDateToken); got != want {
		t.Fatalf("FormatDate(empty) = %q, want default %q", got, want)
	}
}

func TestFormatStamp_ConvertsZone(t *testing.T) {
	got := FormatStamp(stamp, "Asia/Tokyo", DateISO, Time24h)
	if got != "2026-08-09 23:07" {
		t.Fatalf("FormatStamp(Tokyo) = %q, want %q", got, "2026-08-09 23:07")
	}

	// Unknown zones render in UTC rather than failing.
	got = FormatStamp(stamp, "Mars/Olympus_Mons", DateISO, Time24h)
	if got != "2026-08-09 14:07" {
		t.Fatalf("FormatStamp(unknown zone) = %q, want %q", got, "2026-08-09 14:07")
	}
}

func TestZoneLabel_TableAndFallback(t *testing.T) {
	if got := ZoneLabel("America/Los_Angeles"); got != "Pacific Time (US)" {
		t.Fatalf("ZoneLabel = %q, want %q", got, "Pacific Time (US)")
	}
	if got := ZoneLabel("America/Argentina/Buenos_Aires"); got != "America/Argentina/Buenos Aires" {
		t.Fatalf("ZoneLabel fallback = %q, want underscores replaced", got)
	}
}

func TestZones_StableCopy(t *testing.T) {
	zones := Zones()
	if len(zones) == 0 {
		t.Fatalf("Zones returned empty table")
	}
	zones[0].Label = "scribbled"
	if Zones()[0].Label == "scribbled" {
		t.Fatalf("Zones returned shared backing array")
	}
}
