package executor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gmelli/agentic-planner-cli/internal/models"
	"github.com/gmelli/agentic-planner-cli/internal/tools"
)

const lastSearchResultKey = "last_search_result"

// Executor runs plan steps in order, threading intermediate results through a
// per-run context map that it alone owns. A failed tool call produces an error
// string that is treated as a normal result; execution never aborts early.
type Executor struct {
	Registry *tools.Registry
	MaxSteps int
	Verbose  bool

	context map[string]string
}

func New(registry *tools.Registry, maxSteps int) *Executor {
	return &Executor{
		Registry: registry,
		MaxSteps: maxSteps,
		context:  map[string]string{},
	}
}

// ExecutePlan runs up to MaxSteps steps sequentially and returns the final
// text: a single step's result verbatim, or the labeled concatenation of all
// step results.
func (e *Executor) ExecutePlan(ctx context.Context, plan *models.Plan, goal string) string {
	steps := plan.Steps
	if len(steps) > e.MaxSteps {
		steps = steps[:e.MaxSteps]
	}
	if e.Verbose {
		log.Printf("[EXECUTOR] goal %q: executing %d of %d planned steps (limit %d)",
			goal, len(steps), len(plan.Steps), e.MaxSteps)
	}

	results := make([]string, 0, len(steps))
	for i, step := range steps {
		argument := step.Argument
		if argument == models.PlaceholderSearchResults {
			if prev, ok := e.context[lastSearchResultKey]; ok {
				if e.Verbose {
					log.Printf("[EXECUTOR] step %d: substituting previous search results (%d chars)", i+1, len(prev))
				}
				argument = prev
			}
		}

		start := time.Now()
		result := e.Registry.Dispatch(ctx, step.Tool, argument)
		duration := time.Since(start)
		if result == "" {
			result = fmt.Sprintf("Tool %s returned no result", step.Tool)
		}
		log.Printf("[EXECUTOR] step %d: %s executed in %s, output %d chars",
			i+1, step.Tool, duration.Round(time.Millisecond), len(result))

		results = append(results, result)
		e.context[fmt.Sprintf("step_%d_result", i+1)] = result
		if step.Tool == models.ToolSearchWeb {
			e.context[lastSearchResultKey] = result
		}
	}

	if len(results) == 1 {
		return results[0]
	}
	blocks := make([]string, len(results))
	for i, r := range results {
		blocks[i] = fmt.Sprintf("Step %d result:\n%s", i+1, r)
	}
	return strings.Join(blocks, "\n\n")
}

// ContextValue exposes a context entry for inspection after a run.
func (e *Executor) ContextValue(key string) (string, bool) {
	v, ok := e.context[key]
	return v, ok
}
