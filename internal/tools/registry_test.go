package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTool struct {
	name string
	out  string
	arg  string
}

func (s *staticTool) Name() string { return s.name }

func (s *staticTool) Execute(ctx context.Context, argument string) string {
	s.arg = argument
	return s.out
}

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry()
	tool := &staticTool{name: "search_web", out: "hit"}
	reg.Register(tool)

	assert.Equal(t, "hit", reg.Dispatch(context.Background(), "search_web", "golang"))
	assert.Equal(t, "golang", tool.arg)

	got, ok := reg.Get("search_web")
	require.True(t, ok)
	assert.Same(t, tool, got)
}

func TestRegistryUnknownToolReturnsErrorString(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, "Unknown tool: foo", reg.Dispatch(context.Background(), "foo", "bar"))

	_, ok := reg.Get("foo")
	assert.False(t, ok)
}
