// Package logsource defines the log record model and the fetchers that
// retrieve records for a service and calendar day.
//
// # Overview
//
// Everything the viewer displays flows through this package: the Entry
// type models one structured log record, and the Source interface
// abstracts where records come from. Three implementations exist:
//
//   - SampleSource: fabricates a single demonstration record after a
//     simulated delay. Used when a service has no endpoint configured,
//     so the viewer works with zero setup.
//   - Client: HTTP fetcher issuing GET <endpoint>?date=<yyyy-MM-dd> and
//     decoding a JSON array of records.
//   - FileSource: reads the tail of a local JSON-lines file referenced
//     by a file:// endpoint and keeps the records inside the requested
//     day.
//
// ForEndpoint picks the implementation from the endpoint string.
//
// # Entry Shape
//
// Real log sources disagree about field types, so Entry decodes
// defensively: id may arrive as a string or a number, timestamps as
// RFC 3339 (with or without sub-seconds), "2006-01-02 15:04:05", or
// Unix seconds/milliseconds. The typed core covers the well-known
// fields (id, timestamp, level, message, service, user, component,
// action, statusCode, requestId); any other key is preserved in the
// Extra map rather than dropped. Levels are normalized upper-case with
// common aliases collapsed (warning → WARN); unknown levels pass
// through.
//
// Field and FieldNames address fields uniformly by wire name, which is
// what the table's filtering, sorting, and column derivation build on.
// Timestamps render as RFC 3339 UTC there so matching is stable no
// matter how the user formats the timestamp column.
//
// # Fetch Contract
//
// Fetch(ctx, service, day) returns the records for exactly that
// 24-hour window. Entries are created fresh on every fetch; nothing is
// cached or merged. Transport failures, HTTP status >= 400, and
// undecodable payloads are returned as wrapped errors for the UI to
// surface; a missing local file yields an empty result instead, since
// a service may be configured before its log exists.
//
// # Design Rationale
//
//   - No retries or backoff: the UI owns retry policy via its refresh
//     affordance.
//   - No streaming: the viewer is snapshot-per-day by design.
//   - Value-type entries, never mutated after decode: the table layer
//     derives everything it needs without touching the records.
package logsource
