package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/gmelli/agentic-planner-cli/internal/config"
)

// New builds a Client for the given model name from the LLM configuration.
// An explicitly selected provider with no API key is a construction error;
// with no provider configured at all a MockClient is returned so the CLI can
// still run end to end.
func New(ctx context.Context, cfg config.LLMConfig, model string, maxOutputTokens int) (Client, error) {
	prov := strings.ToLower(strings.TrimSpace(cfg.Provider))
	key := strings.TrimSpace(cfg.APIKey)
	switch prov {
	case "openai":
		if key == "" {
			return nil, fmt.Errorf("llm provider openai selected but no api key configured")
		}
		return &OpenAIClient{APIKey: key, Model: withDefault(model, "gpt-4o-mini"), BaseURL: strings.TrimRight(cfg.BaseURL, "/"), Timeout: cfg.Timeout}, nil
	case "anthropic":
		if key == "" {
			return nil, fmt.Errorf("llm provider anthropic selected but no api key configured")
		}
		return &AnthropicClient{APIKey: key, Model: withDefault(model, "claude-3-5-sonnet-latest"), BaseURL: strings.TrimRight(cfg.BaseURL, "/"), Timeout: cfg.Timeout}, nil
	case "gemini":
		if key == "" {
			return nil, fmt.Errorf("llm provider gemini selected but no api key configured")
		}
		return NewGemini(ctx, key, withDefault(model, "gemini-1.5-flash"), maxOutputTokens)
	case "", "mock":
		return &MockClient{}, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
