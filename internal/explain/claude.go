package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/calvale/gander/internal/logsource"
)

// claudeExplainer calls the Anthropic Messages API. One request per
// explanation, no retries; the user is watching a modal, so a failure
// should surface immediately rather than after a backoff ladder.
type claudeExplainer struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
	timeout     time.Duration
}

var _ Explainer = (*claudeExplainer)(nil)

func newClaudeExplainer(cfg Config) *claudeExplainer {
	return &claudeExplainer{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.Credential)),
		model:       NormalizeModel(cfg.Model),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

func (e *claudeExplainer) Explain(ctx context.Context, entry logsource.Entry) (string, error) {
	prompt, err := entryPrompt(entry)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(e.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
	}

	resp, err := e.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude request: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("claude returned no text")
	}
	return strings.TrimSpace(text.String()), nil
}
