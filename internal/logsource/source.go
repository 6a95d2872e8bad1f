package logsource

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for the day query parameter.
const DateLayout = "2006-01-02"

// Source fetches the log entries for one service and one calendar day.
// Implementations must treat both arguments as read-only and return
// entries for exactly the requested 24-hour window.
type Source interface {
	Fetch(ctx context.Context, service string, day time.Time) ([]Entry, error)
}

// Options tune source construction. Zero values select the defaults.
type Options struct {
	// Timeout bounds a single HTTP fetch.
	Timeout time.Duration
	// SampleLatency is the simulated delay of the built-in sample source.
	SampleLatency time.Duration
	// FileTailLines caps how many lines the file source reads from the
	// end of a log file.
	FileTailLines int
}

// ForEndpoint returns the source implementation for a service endpoint:
// an empty endpoint selects the built-in sample source, file:// URLs a
// local file reader, and http:// or https:// URLs the HTTP client.
func ForEndpoint(endpoint string, opts Options) (Source, error) {
	trimmed := strings.TrimSpace(endpoint)
	switch {
	case trimmed == "":
		return &SampleSource{Latency: opts.SampleLatency}, nil
	case strings.HasPrefix(trimmed, "file://"):
		return NewFileSource(trimmed, opts.FileTailLines)
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return NewClient(trimmed, opts.Timeout)
	default:
		return nil, fmt.Errorf("unsupported endpoint %q: expected http://, https://, or file://", endpoint)
	}
}
