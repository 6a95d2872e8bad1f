// Package explain produces plain-language explanations of log entries
// using an AI model.
//
// # Overview
//
// The dashboard exposes a single capability: given one log entry,
// return a few sentences saying what happened and whether it matters.
// That capability is the Explainer interface. Callers never see
// provider types, SDKs, or prompts; they hand over an entry and get
// text or an error.
//
// # Provider Selection
//
// The model string in the preference store picks the backend. Names
// starting with "claude" (or prefixed "anthropic/") go to the
// Anthropic Messages API; names starting with "gemini" (or prefixed
// "google/") go to the Gemini API. Unrecognized names fall through to
// Claude, which matches the default model shipped in the schema.
//
// # Credentials
//
// A blank credential is the common case on first run, so it is not an
// error at construction time. New returns an Explainer whose calls
// fail fast with ErrNoCredential, letting the UI show "add an API key
// in settings" without special-casing construction.
//
// # Design Rationale
//
// One request per explanation, no retry loop. Explanations run behind
// a visible spinner; retry ladders belong in batch pipelines, not
// under a waiting user. Timeouts are enforced here (default 60s)
// rather than in the UI so every provider gets the same bound.
package explain
