package viewlink

import (
	"testing"
	"time"
)

func TestLinkRoundTrip(t *testing.T) {
	t.Parallel()

	views := []View{
		{Date: "2026-02-03", Service: "gateway"},
		{Date: Today, Service: "billing"},
		{Service: "orders"},
		{Date: "2026-02-03", Service: "api gateway"},
	}
	for _, view := range views {
		link := view.Link()
		parsed, err := ParseLink(link)
		if err != nil {
			t.Fatalf("ParseLink(%q): %v", link, err)
		}
		if parsed != view {
			t.Fatalf("round trip of %+v via %q = %+v", view, link, parsed)
		}
	}
}

func TestLinkCanonicalForm(t *testing.T) {
	t.Parallel()

	view := View{Date: "2026-02-03", Service: "gateway"}
	want := "gander://logs?date=2026-02-03&service=gateway"
	if got := view.Link(); got != want {
		t.Fatalf("Link() = %q, want %q", got, want)
	}
}

func TestParseLinkForms(t *testing.T) {
	t.Parallel()

	want := View{Date: "2026-02-03", Service: "gateway"}
	forms := []string{
		"gander://logs?date=2026-02-03&service=gateway",
		"  gander://logs?date=2026-02-03&service=gateway  ",
		"https://dash.example.com/logs?date=2026-02-03&service=gateway",
		"date=2026-02-03&service=gateway",
	}
	for _, raw := range forms {
		view, err := ParseLink(raw)
		if err != nil {
			t.Fatalf("ParseLink(%q): %v", raw, err)
		}
		if view != want {
			t.Fatalf("ParseLink(%q) = %+v, want %+v", raw, view, want)
		}
	}
}

func TestParseLinkRejectsUseless(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"",
		"   ",
		"gander://settings?date=2026-02-03",
		"https://example.com/nothing",
		"gibberish",
	} {
		if _, err := ParseLink(raw); err == nil {
			t.Fatalf("ParseLink(%q) = nil error, want error", raw)
		}
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		date string
		want time.Time
	}{
		{"2026-02-03", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Today, today},
		{"TODAY", today},
		{"", today},
		{"not-a-date", today},
	}
	for _, tc := range cases {
		got := View{Date: tc.date}.ResolveDate(now)
		if !got.Equal(tc.want) {
			t.Fatalf("ResolveDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestForFormatsDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 2, 3, 15, 4, 5, 0, time.FixedZone("JST", 9*3600))
	view := For("gateway", day)
	if view.Date != "2026-02-03" {
		t.Fatalf("For Date = %q, want 2026-02-03", view.Date)
	}
	if view.Service != "gateway" {
		t.Fatalf("For Service = %q, want gateway", view.Service)
	}
}
