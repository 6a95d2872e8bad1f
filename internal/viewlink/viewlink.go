// Package viewlink encodes the shareable part of a dashboard view as a
// gander://logs link and parses such links back. Links survive being
// pasted into chat, passed via the -link flag, or hand-edited; parsing
// is forgiving about everything except having nothing to say.
package viewlink

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/calvale/gander/internal/logsource"
)

const (
	// Scheme and Host form the link prefix gander://logs.
	Scheme = "gander"
	Host   = "logs"

	// Today is the symbolic date resolved at fetch time, so a link
	// saying "today" keeps meaning today when opened next week.
	Today = "today"

	paramDate    = "date"
	paramService = "service"
)

// View is the shareable dashboard state: which service's logs for
// which day. Date is an ISO calendar date, Today, or empty (treated as
// Today).
type View struct {
	Date    string
	Service string
}

// For captures a concrete selection as a View.
func For(service string, day time.Time) View {
	return View{Date: day.UTC().Format(logsource.DateLayout), Service: service}
}

// Values encodes the view as query parameters, omitting empty fields.
func (v View) Values() url.Values {
	values := url.Values{}
	if v.Date != "" {
		values.Set(paramDate, v.Date)
	}
	if v.Service != "" {
		values.Set(paramService, v.Service)
	}
	return values
}

// Link renders the canonical shareable form,
// gander://logs?date=2026-02-03&service=gateway. Encode sorts keys, so
// the output is stable for a given view.
func (v View) Link() string {
	link := url.URL{Scheme: Scheme, Host: Host, RawQuery: v.Values().Encode()}
	return link.String()
}

// ResolveDate turns the view's date into a concrete UTC day. Today, an
// empty date, and anything unparseable all resolve to now's UTC day,
// so a stale or mangled link still lands somewhere sensible.
func (v View) ResolveDate(now time.Time) time.Time {
	raw := strings.ToLower(strings.TrimSpace(v.Date))
	if raw == "" || raw == Today {
		return dayOf(now)
	}
	day, err := time.ParseInLocation(logsource.DateLayout, raw, time.UTC)
	if err != nil {
		return dayOf(now)
	}
	return day
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse reads a view from query parameters.
func Parse(values url.Values) View {
	return View{
		Date:    strings.TrimSpace(values.Get(paramDate)),
		Service: strings.TrimSpace(values.Get(paramService)),
	}
}

// ParseLink accepts a gander://logs link, any URL carrying date or
// service parameters, or a bare query string.
func ParseLink(raw string) (View, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return View{}, fmt.Errorf("link is empty")
	}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		if u.Scheme == Scheme {
			if u.Host != Host {
				return View{}, fmt.Errorf("unsupported link %q: expected %s://%s", raw, Scheme, Host)
			}
			return Parse(u.Query()), nil
		}
		view := Parse(u.Query())
		if view == (View{}) {
			return View{}, fmt.Errorf("link %q carries no date or service", raw)
		}
		return view, nil
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		return View{}, fmt.Errorf("parse link %q: %w", raw, err)
	}
	view := Parse(values)
	if view == (View{}) {
		return View{}, fmt.Errorf("link %q carries no date or service", raw)
	}
	return view, nil
}
