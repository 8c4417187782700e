package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmelli/agentic-planner-cli/internal/config"
)

func TestNewUnconfiguredFallsBackToMock(t *testing.T) {
	c, err := New(context.Background(), config.LLMConfig{}, "", 0)
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, c)
}

func TestNewExplicitProviderRequiresKey(t *testing.T) {
	for _, prov := range []string{"openai", "anthropic", "gemini"} {
		_, err := New(context.Background(), config.LLMConfig{Provider: prov}, "", 0)
		assert.Error(t, err, "provider %s", prov)
	}
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), config.LLMConfig{Provider: "huggingface", APIKey: "k"}, "", 0)
	assert.ErrorContains(t, err, "unsupported llm provider")
}

func TestNewOpenAIDefaults(t *testing.T) {
	cfg := config.LLMConfig{Provider: "openai", APIKey: "k", Timeout: 5 * time.Second}
	c, err := New(context.Background(), cfg, "", 0)
	require.NoError(t, err)

	oc, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", oc.Model)
	assert.Equal(t, 5*time.Second, oc.Timeout)
}

func TestNewHonorsModelOverride(t *testing.T) {
	cfg := config.LLMConfig{Provider: "anthropic", APIKey: "k"}
	c, err := New(context.Background(), cfg, "claude-3-haiku", 0)
	require.NoError(t, err)

	ac, ok := c.(*AnthropicClient)
	require.True(t, ok)
	assert.Equal(t, "claude-3-haiku", ac.Model)
}
