package llm

import (
	"context"
)

// Client is the minimal interface shared by the planner and the summarize
// tool. Any provider implementation should satisfy this.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
