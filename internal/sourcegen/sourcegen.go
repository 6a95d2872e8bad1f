// Package sourcegen fabricates believable log entries for demo and
// development use. Generation is deterministic: the same service and
// day always produce the same entries, so a shared view link shows
// both people the same data.
package sourcegen

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/calvale/gander/internal/logsource"
)

const (
	minEntries = 60
	maxEntries = 180
)

// Services returns the demo service catalog. Generate accepts any
// service name; this list is what the demo server advertises.
func Services() []string {
	return []string{"gateway", "orders", "billing", "auth", "search"}
}

// Generate fabricates the entries for a service on a given UTC day,
// sorted by timestamp. count <= 0 picks a day-specific count between
// minEntries and maxEntries.
func Generate(service string, day time.Time, count int) []logsource.Entry {
	day = startOfDay(day)
	rng := rand.New(rand.NewSource(seed(service, day)))
	if count <= 0 {
		count = minEntries + rng.Intn(maxEntries-minEntries+1)
	}

	offsets := make([]int, count)
	for i := range offsets {
		offsets[i] = rng.Intn(86400)
	}
	sort.Ints(offsets)

	entries := make([]logsource.Entry, 0, count)
	for i := 0; i < count; i++ {
		entry := logsource.Entry{
			ID:        entryID(service, day, i),
			Timestamp: day.Add(time.Duration(offsets[i])*time.Second + time.Duration(rng.Intn(1000))*time.Millisecond),
			Service:   service,
			Level:     rollLevel(rng),
		}
		fill(rng, &entry)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries
}

// rollLevel draws a level with day-of-traffic weighting: mostly
// routine, a sprinkle of warnings, occasional errors.
func rollLevel(rng *rand.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < 0.70:
		return logsource.LevelInfo
	case roll < 0.82:
		return logsource.LevelDebug
	case roll < 0.94:
		return logsource.LevelWarn
	default:
		return logsource.LevelError
	}
}

func seed(service string, day time.Time) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s@%s", service, day.Format(logsource.DateLayout))
	return int64(h.Sum64())
}

func entryID(service string, day time.Time, i int) string {
	name := fmt.Sprintf("%s/%s/%d", service, day.Format(logsource.DateLayout), i)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
