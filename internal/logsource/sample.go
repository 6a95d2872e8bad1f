package logsource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Ensure SampleSource implements Source at compile time.
var _ Source = (*SampleSource)(nil)

// SampleSource is the built-in stand-in used when a service has no
// endpoint configured. It waits a simulated latency and then fabricates
// a single demonstration record, so the viewer works out of the box
// without any log source running.
type SampleSource struct {
	// Latency is how long a fetch pretends to take. Zero means no delay.
	Latency time.Duration

	// now overrides the record timestamp in tests.
	now func() time.Time
}

const defaultSampleLatency = 650 * time.Millisecond

// Fetch returns one fabricated entry for the requested service and day
// after the simulated latency, honoring context cancellation.
func (s *SampleSource) Fetch(ctx context.Context, service string, day time.Time) ([]Entry, error) {
	latency := s.Latency
	if latency < 0 {
		latency = defaultSampleLatency
	}
	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: nowFn().UTC(),
		Level:     LevelInfo,
		Message: fmt.Sprintf("Sample entry for %s on %s. Configure an endpoint for this service to fetch real logs.",
			service, day.Format(DateLayout)),
		Service:   service,
		Component: "sample",
	}
	return []Entry{entry}, nil
}
