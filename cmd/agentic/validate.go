package main

import (
	"fmt"
	"strings"

	"github.com/gmelli/agentic-planner-cli/internal/config"
)

// characters never allowed in a goal
const blockedChars = "<>&|;`"

// keyword lists marking goals this tool cannot serve
var (
	mathPatterns = []string{"calculate", "compute", "solve", "=", "+", "-", "*", "/", "math"}
	codePatterns = []string{"write code", "write python", "write java", "implement", "debug", "fix bug", "program"}
)

// goalError carries the user-facing ERROR line plus a HELP suggestion.
type goalError struct {
	msg  string
	help string
}

func (e *goalError) Error() string { return e.msg }

// validateGoal rejects empty, too-short, too-long goals, goals containing
// blocklisted punctuation, and math- or code-request goals. The goal is
// expected to be trimmed already.
func validateGoal(goal string, cfg config.ValidationConfig) *goalError {
	if goal == "" {
		return &goalError{
			msg:  "Goal cannot be empty",
			help: "Provide a clear goal like 'Research machine learning' or 'Explain Docker containers'",
		}
	}
	if len(goal) < cfg.MinGoalLength {
		return &goalError{
			msg:  fmt.Sprintf("Goal too short (minimum %d characters)", cfg.MinGoalLength),
			help: "Provide a more descriptive goal",
		}
	}
	if len(goal) > cfg.MaxGoalLength {
		return &goalError{
			msg:  fmt.Sprintf("Goal too long (maximum %d characters)", cfg.MaxGoalLength),
			help: "Simplify your goal or break it into smaller parts",
		}
	}
	if strings.ContainsAny(goal, blockedChars) {
		return &goalError{
			msg:  "Goal contains invalid characters",
			help: "Use only letters, numbers, spaces, and basic punctuation",
		}
	}
	lower := strings.ToLower(goal)
	for _, pattern := range mathPatterns {
		if strings.Contains(lower, pattern) {
			return &goalError{
				msg:  "This tool searches and summarizes web content",
				help: "Try goals like 'Find information about X' or 'Research Y topic'",
			}
		}
	}
	for _, pattern := range codePatterns {
		if strings.Contains(lower, pattern) {
			return &goalError{
				msg:  "This tool demonstrates planning, not code generation",
				help: "Try research goals like 'Explain machine learning' or 'Find news about AI'",
			}
		}
	}
	return nil
}
