package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gmelli/agentic-planner-cli/internal/config"
	"github.com/gmelli/agentic-planner-cli/internal/models"
	"github.com/gmelli/agentic-planner-cli/internal/providers/llm"
)

// SummarizeTool condenses text through the summarization model. Oversized
// input is truncated before the model sees it.
type SummarizeTool struct {
	Client  llm.Client
	cfg     config.GenerationConfig
	Verbose bool
}

func NewSummarizeTool(client llm.Client, cfg config.GenerationConfig) *SummarizeTool {
	return &SummarizeTool{Client: client, cfg: cfg}
}

func (s *SummarizeTool) Name() string { return models.ToolSummarizeText }

func (s *SummarizeTool) Execute(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return "No text provided to summarize"
	}
	if s.cfg.MaxInputChars > 0 && len(text) > s.cfg.MaxInputChars {
		if s.Verbose {
			log.Printf("[SUMMARIZE] truncating input from %d to %d chars", len(text), s.cfg.MaxInputChars)
		}
		text = text[:s.cfg.MaxInputChars] + "..."
	}
	prompt := fmt.Sprintf(
		"Summarize the following text in %d to %d words. Focus on key facts.\n\nText:\n%s",
		s.cfg.SummaryMinLength, s.cfg.SummaryMaxLength, text)
	out, err := s.Client.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Sprintf("Summarization failed: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		return "Summary could not be generated"
	}
	return strings.TrimSpace(out)
}
