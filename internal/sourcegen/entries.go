package sourcegen

import (
	"fmt"
	"math/rand"

	"github.com/calvale/gander/internal/logsource"
)

var (
	users = []string{"mona", "ravi", "chen", "amelia", "diego", "kofi", "sara"}

	httpMethods = []string{"GET", "GET", "GET", "POST", "PUT", "DELETE"}
	httpPaths   = []string{
		"/api/v1/orders",
		"/api/v1/orders/%d",
		"/api/v1/users/me",
		"/api/v1/payments",
		"/api/v1/search",
		"/healthz",
	}

	dbQueries = []string{"orders_by_user", "invoice_totals", "session_lookup", "payment_batch", "audit_trail"}

	cacheKeys = []string{"session", "user", "rate", "catalog", "feature"}

	jobs = []string{"invoice-sync", "email-digest", "index-rebuild", "payout-batch", "stale-session-sweep"}

	regions = []string{"us-east-1", "eu-west-1", "ap-southeast-2"}
)

// fill completes an entry whose ID, Timestamp, Service, and Level are
// already set. Everything drawn from rng so generation stays
// deterministic.
func fill(rng *rand.Rand, entry *logsource.Entry) {
	switch rng.Intn(6) {
	case 0, 1:
		fillHTTP(rng, entry)
	case 2:
		fillDB(rng, entry)
	case 3:
		fillCache(rng, entry)
	case 4:
		fillAuth(rng, entry)
	default:
		fillWorker(rng, entry)
	}
}

func fillHTTP(rng *rand.Rand, entry *logsource.Entry) {
	entry.Component = "http"
	entry.Action = "request"
	entry.RequestID = fmt.Sprintf("req-%08x", rng.Uint32())

	method := httpMethods[rng.Intn(len(httpMethods))]
	path := httpPaths[rng.Intn(len(httpPaths))]
	if path == "/api/v1/orders/%d" {
		path = fmt.Sprintf(path, 1000+rng.Intn(9000))
	}

	var status, duration int
	switch entry.Level {
	case logsource.LevelError:
		status = []int{500, 502, 503, 504}[rng.Intn(4)]
		duration = 1000 + rng.Intn(9000)
	case logsource.LevelWarn:
		status = []int{404, 409, 429}[rng.Intn(3)]
		duration = 300 + rng.Intn(2000)
	default:
		status = []int{200, 200, 200, 201, 204, 302}[rng.Intn(6)]
		duration = 2 + rng.Intn(180)
	}

	entry.StatusCode = fmt.Sprintf("%d", status)
	entry.Message = fmt.Sprintf("%s %s responded %d in %dms", method, path, status, duration)
	entry.Extra = map[string]any{"durationMs": duration}
	if rng.Float64() < 0.4 {
		entry.User = users[rng.Intn(len(users))]
	}
	if rng.Float64() < 0.25 {
		entry.Extra["region"] = regions[rng.Intn(len(regions))]
	}
}

func fillDB(rng *rand.Rand, entry *logsource.Entry) {
	entry.Component = "db"
	entry.Action = "query"
	query := dbQueries[rng.Intn(len(dbQueries))]
	rows := rng.Intn(500)

	switch entry.Level {
	case logsource.LevelError:
		entry.Message = fmt.Sprintf("query %s failed: connection reset by primary", query)
	case logsource.LevelWarn:
		duration := 500 + rng.Intn(4500)
		entry.Message = fmt.Sprintf("slow query %s took %dms (%d rows)", query, duration, rows)
		entry.Extra = map[string]any{"durationMs": duration, "rows": rows}
	default:
		duration := 1 + rng.Intn(40)
		entry.Message = fmt.Sprintf("query %s took %dms (%d rows)", query, duration, rows)
		entry.Extra = map[string]any{"durationMs": duration, "rows": rows}
	}
}

func fillCache(rng *rand.Rand, entry *logsource.Entry) {
	entry.Component = "cache"
	entry.Action = "lookup"
	key := fmt.Sprintf("%s:%06x", cacheKeys[rng.Intn(len(cacheKeys))], rng.Intn(1<<24))
	hit := rng.Float64() < 0.8

	switch entry.Level {
	case logsource.LevelError:
		entry.Message = "cache backend unreachable, serving from origin"
	case logsource.LevelWarn:
		entry.Message = fmt.Sprintf("eviction pressure high, dropped %s", key)
	default:
		if hit {
			entry.Message = fmt.Sprintf("cache hit for %s", key)
		} else {
			entry.Message = fmt.Sprintf("cache miss for %s", key)
		}
		entry.Extra = map[string]any{"cacheHit": hit}
	}
}

func fillAuth(rng *rand.Rand, entry *logsource.Entry) {
	entry.Component = "auth"
	entry.User = users[rng.Intn(len(users))]

	switch entry.Level {
	case logsource.LevelError:
		entry.Action = "login"
		entry.Message = fmt.Sprintf("login failed for %s: token signature invalid", entry.User)
		entry.StatusCode = "401"
	case logsource.LevelWarn:
		entry.Action = "refresh"
		entry.Message = fmt.Sprintf("session for %s close to expiry, refresh prompted", entry.User)
	default:
		actions := []string{"login", "logout", "refresh"}
		entry.Action = actions[rng.Intn(len(actions))]
		entry.Message = fmt.Sprintf("%s succeeded for %s", entry.Action, entry.User)
	}
}

func fillWorker(rng *rand.Rand, entry *logsource.Entry) {
	entry.Component = "worker"
	entry.Action = "job"
	job := jobs[rng.Intn(len(jobs))]
	attempt := 1 + rng.Intn(3)

	switch entry.Level {
	case logsource.LevelError:
		entry.Message = fmt.Sprintf("job %s failed on attempt %d, giving up", job, attempt)
		entry.Extra = map[string]any{"jobId": job, "attempt": attempt}
	case logsource.LevelWarn:
		entry.Message = fmt.Sprintf("job %s retrying, attempt %d", job, attempt)
		entry.Extra = map[string]any{"jobId": job, "attempt": attempt}
	case logsource.LevelDebug:
		entry.Message = fmt.Sprintf("job %s heartbeat", job)
	default:
		duration := 200 + rng.Intn(8000)
		entry.Message = fmt.Sprintf("job %s completed in %dms", job, duration)
		entry.Extra = map[string]any{"jobId": job, "durationMs": duration}
	}
}
