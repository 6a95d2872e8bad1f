package explain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/calvale/gander/internal/logsource"
)

// ErrNoCredential reports that no API key is configured. Explain
// returns it before any network activity so the dashboard can surface
// a setup hint instead of a request failure.
var ErrNoCredential = errors.New("no AI credential configured")

// Explainer turns one log entry into a short plain-language
// explanation. Implementations are safe for a single in-flight call;
// the dashboard never runs two explanations at once.
type Explainer interface {
	Explain(ctx context.Context, entry logsource.Entry) (string, error)
}

// Provider identifies the AI backend a model string maps to.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderGemini Provider = "gemini"
)

const (
	defaultTimeout     = 60 * time.Second
	defaultMaxTokens   = 1024
	defaultTemperature = 0.2
)

// Config selects the model and credential for explanations. Model and
// Credential come from the preference store; the rest from the config
// file.
type Config struct {
	Model       string
	Credential  string
	Timeout     time.Duration
	MaxTokens   int64
	Temperature float64
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = defaultTemperature
	}
	return c
}

// New builds an Explainer for the configured model. The provider is
// inferred from the model string, so switching between Claude and
// Gemini is just a preference edit. A missing credential still yields
// a working Explainer; every call reports ErrNoCredential.
func New(cfg Config) Explainer {
	cfg = cfg.withDefaults()
	if strings.TrimSpace(cfg.Credential) == "" {
		return noCredentialExplainer{}
	}

	switch DetectProvider(cfg.Model) {
	case ProviderGemini:
		return newGeminiExplainer(cfg)
	default:
		return newClaudeExplainer(cfg)
	}
}

// DetectProvider determines the provider from a model string. Model
// strings can be bare ("claude-sonnet-4-20250514", "gemini-2.0-flash")
// or prefixed ("anthropic/claude-...", "google/gemini-..."). Anything
// unrecognized goes to Claude, matching the default model.
func DetectProvider(model string) Provider {
	model = strings.ToLower(strings.TrimSpace(model))

	if strings.HasPrefix(model, "claude/") || strings.HasPrefix(model, "anthropic/") {
		return ProviderClaude
	}
	if strings.HasPrefix(model, "gemini/") || strings.HasPrefix(model, "google/") {
		return ProviderGemini
	}

	if strings.HasPrefix(model, "claude-") {
		return ProviderClaude
	}
	if strings.HasPrefix(model, "gemini-") {
		return ProviderGemini
	}

	return ProviderClaude
}

// NormalizeModel strips a provider prefix from the model string.
func NormalizeModel(model string) string {
	model = strings.TrimSpace(model)
	for _, prefix := range []string{"claude/", "anthropic/", "gemini/", "google/"} {
		if strings.HasPrefix(strings.ToLower(model), prefix) {
			return model[len(prefix):]
		}
	}
	return model
}

type noCredentialExplainer struct{}

var _ Explainer = noCredentialExplainer{}

func (noCredentialExplainer) Explain(context.Context, logsource.Entry) (string, error) {
	return "", ErrNoCredential
}
