package models

// Tool names recognized by the planner and the registry. There is no
// extensibility point: these two are the whole tool vocabulary.
const (
	ToolSearchWeb     = "search_web"
	ToolSummarizeText = "summarize_text"
)

// PlaceholderSearchResults is the literal summarize argument that the executor
// replaces with the most recent search output at dispatch time.
const PlaceholderSearchResults = "search results"

// Step names a tool and the text argument to run it with. Steps are immutable
// once produced by the planner.
type Step struct {
	Tool     string `json:"tool"`
	Argument string `json:"argument"`
}

// Plan is an ordered sequence of steps. In practice the planner emits at most
// one step per tool.
type Plan struct {
	Steps []Step `json:"steps"`
}
