package tools

import "context"

// Tool executes against a single text argument. Failures are reported in the
// returned text itself (prefix-matched strings like "Search failed: ..."),
// never as a Go error: every dispatch yields some result.
type Tool interface {
	Name() string
	Execute(ctx context.Context, argument string) string
}

type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Dispatch runs the named tool. Unknown names degrade to an error string.
func (r *Registry) Dispatch(ctx context.Context, name, argument string) string {
	t, ok := r.tools[name]
	if !ok {
		return "Unknown tool: " + name
	}
	return t.Execute(ctx, argument)
}
