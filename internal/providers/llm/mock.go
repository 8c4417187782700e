package llm

import (
	"context"
)

// MockClient is used when no real provider is configured, and throughout the
// tests. Response and Err are returned as scripted; Prompts records every
// prompt the client saw.
type MockClient struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
