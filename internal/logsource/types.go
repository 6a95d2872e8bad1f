package logsource

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

const plainTimestampLayout = "2006-01-02 15:04:05"

// Normalized level values. Anything else passes through unchanged.
const (
	LevelInfo  = "INFO"
	LevelDebug = "DEBUG"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Entry is one structured log record. The typed core covers the fields
// every source is expected to emit; anything else a record carries lands
// in Extra so no field is ever dropped. Entries are value types and are
// never mutated after decoding.
type Entry struct {
	ID         string
	Timestamp  time.Time
	Level      string
	Message    string
	Service    string
	User       string
	Component  string
	Action     string
	StatusCode string
	RequestID  string
	Extra      map[string]any
}

// coreFields lists the well-known wire names in display order. These are
// the names Field and FieldNames address the typed core by; they double
// as the table's column identifiers.
var coreFields = []string{
	"id",
	"timestamp",
	"level",
	"service",
	"message",
	"user",
	"component",
	"action",
	"statusCode",
	"requestId",
}

// CoreFields returns the well-known field names in display order.
func CoreFields() []string {
	out := make([]string, len(coreFields))
	copy(out, coreFields)
	return out
}

// UnmarshalJSON accepts the loosely-shaped records real log sources emit:
// id as string or number, timestamp as RFC 3339 (with or without
// sub-second precision), "2006-01-02 15:04:05", or Unix seconds or
// milliseconds. Unknown keys are preserved in Extra.
func (e *Entry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	raw := make(map[string]any)
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	*e = Entry{}
	for key, val := range raw {
		switch key {
		case "id":
			e.ID = valueString(val)
		case "timestamp":
			e.Timestamp = parseStamp(val)
		case "level":
			e.Level = NormalizeLevel(valueString(val))
		case "message":
			e.Message = valueString(val)
		case "service":
			e.Service = valueString(val)
		case "user":
			e.User = valueString(val)
		case "component":
			e.Component = valueString(val)
		case "action":
			e.Action = valueString(val)
		case "statusCode":
			e.StatusCode = valueString(val)
		case "requestId":
			e.RequestID = valueString(val)
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]any)
			}
			e.Extra[key] = val
		}
	}
	return nil
}

// MarshalJSON writes the record back out with its core fields under their
// wire names and every extra field alongside, so a copied or explained
// record contains everything that arrived.
func (e Entry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Extra)+10)
	for k, v := range e.Extra {
		out[k] = v
	}
	out["id"] = e.ID
	out["level"] = e.Level
	out["message"] = e.Message
	if !e.Timestamp.IsZero() {
		out["timestamp"] = e.Timestamp.Format(time.RFC3339Nano)
	}
	putNonEmpty(out, "service", e.Service)
	putNonEmpty(out, "user", e.User)
	putNonEmpty(out, "component", e.Component)
	putNonEmpty(out, "action", e.Action)
	putNonEmpty(out, "statusCode", e.StatusCode)
	putNonEmpty(out, "requestId", e.RequestID)
	return json.Marshal(out)
}

// Field returns the named field rendered as its raw display string and
// whether the entry carries it. Core fields are addressed by wire name;
// anything else is looked up in Extra. Timestamps render as RFC 3339 in
// UTC so filtering and sorting see a stable form regardless of display
// preferences.
func (e Entry) Field(name string) (string, bool) {
	switch name {
	case "id":
		return e.ID, e.ID != ""
	case "timestamp":
		if e.Timestamp.IsZero() {
			return "", false
		}
		return e.Timestamp.UTC().Format(time.RFC3339), true
	case "level":
		return e.Level, e.Level != ""
	case "message":
		return e.Message, e.Message != ""
	case "service":
		return e.Service, e.Service != ""
	case "user":
		return e.User, e.User != ""
	case "component":
		return e.Component, e.Component != ""
	case "action":
		return e.Action, e.Action != ""
	case "statusCode":
		return e.StatusCode, e.StatusCode != ""
	case "requestId":
		return e.RequestID, e.RequestID != ""
	default:
		val, ok := e.Extra[name]
		if !ok {
			return "", false
		}
		return valueString(val), true
	}
}

// FieldNames returns the names of the fields this entry carries: core
// fields in display order first, then extra keys sorted.
func (e Entry) FieldNames() []string {
	names := make([]string, 0, len(coreFields)+len(e.Extra))
	for _, name := range coreFields {
		if _, ok := e.Field(name); ok {
			names = append(names, name)
		}
	}
	if len(e.Extra) > 0 {
		extras := make([]string, 0, len(e.Extra))
		for k := range e.Extra {
			extras = append(extras, k)
		}
		sort.Strings(extras)
		names = append(names, extras...)
	}
	return names
}

// NormalizeLevel upper-cases a level and collapses common aliases.
// Unrecognized levels pass through so nothing a source emits is lost.
func NormalizeLevel(level string) string {
	upper := strings.ToUpper(strings.TrimSpace(level))
	switch upper {
	case "WARNING":
		return LevelWarn
	case "ERR":
		return LevelError
	default:
		return upper
	}
}

func putNonEmpty(out map[string]any, key, value string) {
	if value != "" {
		out[key] = value
	}
}

// valueString renders an arbitrary decoded JSON value for display and
// matching. Nested values fall back to their compact JSON form.
func valueString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func parseStamp(val any) time.Time {
	switch v := val.(type) {
	case string:
		return parseStampString(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return timeFromUnix(n)
		}
		if f, err := v.Float64(); err == nil {
			sec := int64(f)
			nsec := int64((f - float64(sec)) * float64(time.Second))
			return time.Unix(sec, nsec).UTC()
		}
	}
	return time.Time{}
}

func parseStampString(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(plainTimestampLayout, value, time.UTC); err == nil {
		return t
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return timeFromUnix(n)
	}
	return time.Time{}
}

// timeFromUnix treats values at or above 1e11 as milliseconds; Unix
// seconds will not reach that magnitude for several millennia.
func timeFromUnix(n int64) time.Time {
	if n >= 100_000_000_000 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}
