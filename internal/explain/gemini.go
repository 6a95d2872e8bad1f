package explain

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/calvale/gander/internal/logsource"
)

// geminiExplainer calls the Gemini API. The genai client is built per
// call because its constructor wants the request context; construction
// is cheap, no connection happens until the request.
type geminiExplainer struct {
	apiKey      string
	model       string
	temperature float32
	timeout     time.Duration
}

var _ Explainer = (*geminiExplainer)(nil)

func newGeminiExplainer(cfg Config) *geminiExplainer {
	return &geminiExplainer{
		apiKey:      cfg.Credential,
		model:       NormalizeModel(cfg.Model),
		temperature: float32(cfg.Temperature),
		timeout:     cfg.Timeout,
	}
}

func (e *geminiExplainer) Explain(ctx context.Context, entry logsource.Entry) (string, error) {
	prompt, err := entryPrompt(entry)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(e.temperature),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	contents := []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(prompt)},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}
