package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gmelli/agentic-planner-cli/internal/models"
	"github.com/gmelli/agentic-planner-cli/internal/providers/llm"
)

// leading phrases stripped from the goal to form the search query
var goalPrefixes = []string{
	"Find information about ",
	"Research ",
	"Explain ",
}

// Planner turns a natural-language goal into an executable plan by asking the
// planning model for a two-step decomposition and scanning its output for the
// known tool names. It never fails: inference errors and unparseable output
// both degrade to the fixed search-then-summarize fallback plan.
type Planner struct {
	Client  llm.Client
	Verbose bool
}

func New(client llm.Client) *Planner {
	return &Planner{Client: client}
}

// Plan returns a non-empty plan for the goal plus the raw model output for
// the --explain view (empty when inference failed).
func (p *Planner) Plan(ctx context.Context, goal string) (*models.Plan, string) {
	query := DeriveQuery(goal)
	if p.Verbose {
		log.Printf("[PLANNER] goal %q -> search query %q", goal, query)
	}

	raw, err := p.Client.GenerateText(ctx, buildPrompt(goal))
	if err != nil {
		log.Printf("[PLANNER] inference failed, using fallback plan: %v", err)
		return fallbackPlan(query), ""
	}

	steps := parseSteps(raw, query)
	if len(steps) == 0 {
		if p.Verbose {
			log.Printf("[PLANNER] no recognized tools in model output, using fallback plan")
		}
		return fallbackPlan(query), raw
	}
	return &models.Plan{Steps: steps}, raw
}

// DeriveQuery strips the known leading phrases from a goal; when none match
// the query is the goal verbatim.
func DeriveQuery(goal string) string {
	q := goal
	for _, prefix := range goalPrefixes {
		q = strings.TrimPrefix(q, prefix)
	}
	return q
}

func buildPrompt(goal string) string {
	return fmt.Sprintf(`Create a 2-step plan to achieve this goal using these tools:

Available tools:
- search_web: searches the web
- summarize_text: summarizes text

Goal: %s

Output format:
Step 1: search_web(search query here)
Step 2: summarize_text(search results)

Plan:`, goal)
}

// parseSteps scans the model output line by line for the two known tool-name
// substrings. The model's own proposed arguments are discarded on purpose:
// search steps always carry the derived query, summarize steps the literal
// placeholder that the executor resolves at dispatch time. One line may
// contribute both steps. Unknown tool names are ignored.
func parseSteps(planText, query string) []models.Step {
	var steps []models.Step
	for _, line := range strings.Split(planText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, models.ToolSearchWeb) {
			steps = append(steps, models.Step{Tool: models.ToolSearchWeb, Argument: query})
		}
		if strings.Contains(lower, models.ToolSummarizeText) {
			steps = append(steps, models.Step{Tool: models.ToolSummarizeText, Argument: models.PlaceholderSearchResults})
		}
	}
	return steps
}

func fallbackPlan(query string) *models.Plan {
	return &models.Plan{Steps: []models.Step{
		{Tool: models.ToolSearchWeb, Argument: query},
		{Tool: models.ToolSummarizeText, Argument: models.PlaceholderSearchResults},
	}}
}
