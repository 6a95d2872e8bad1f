package explain

import (
	"encoding/json"
	"fmt"

	"github.com/calvale/gander/internal/logsource"
)

// systemPrompt frames every explanation request. Kept short and
// directive; long system prompts mostly buy latency here.
const systemPrompt = "You explain application log entries to engineers. " +
	"Given one log entry as JSON, describe in plain language what happened, " +
	"the most likely cause, and whether it needs attention. " +
	"Answer in two to four sentences of prose. No markdown, no preamble, " +
	"no restating the raw fields."

// entryPrompt renders the user message for one entry. The full entry
// goes over as indented JSON so the model sees every field, extras
// included.
func entryPrompt(entry logsource.Entry) (string, error) {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode entry: %w", err)
	}
	return "Explain this log entry:\n\n" + string(data), nil
}
