package logsource

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Ensure FileSource implements Source at compile time.
var _ Source = (*FileSource)(nil)

// FileSource reads entries from a local JSON-lines log file. Only the
// tail of the file is read so pointing the viewer at a large log stays
// cheap.
type FileSource struct {
	path      string
	tailLines int
}

const defaultTailLines = 5000

// NewFileSource builds a FileSource from a file:// endpoint URL.
func NewFileSource(endpoint string, tailLines int) (*FileSource, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "file" {
		return nil, fmt.Errorf("endpoint %q: not a file URL", endpoint)
	}
	path := u.Path
	if u.Host != "" && u.Host != "localhost" {
		return nil, fmt.Errorf("endpoint %q: remote file hosts are not supported", endpoint)
	}
	if path == "" {
		path = u.Opaque
	}
	if path == "" {
		return nil, fmt.Errorf("endpoint %q: missing file path", endpoint)
	}
	if tailLines <= 0 {
		tailLines = defaultTailLines
	}
	return &FileSource{path: path, tailLines: tailLines}, nil
}

// Fetch parses the tail of the file and keeps the entries whose
// timestamps fall inside the requested UTC day. Lines that are not
// valid JSON objects are skipped.
func (f *FileSource) Fetch(ctx context.Context, service string, day time.Time) ([]Entry, error) {
	lines, err := tailLines(f.path, f.tailLines)
	if err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		ts := entry.Timestamp.UTC()
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		if entry.Service == "" {
			entry.Service = service
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// tailLines returns at most maxLines from the end of the file at path.
// A missing file yields no lines rather than an error so a service can
// be configured before its log exists.
func tailLines(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
