package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmelli/agentic-planner-cli/internal/config"
)

func searchConfig(endpoint string) config.SearchConfig {
	return config.SearchConfig{
		Endpoint:         endpoint,
		Timeout:          2 * time.Second,
		MaxAttempts:      3,
		RetryDelay:       0,
		MaxRelatedTopics: 3,
	}
}

func TestSearchExtractsSectionsInPriorityOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test query", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("no_html"))
		assert.Equal(t, "1", r.URL.Query().Get("skip_disambig"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Answer": "Test answer",
			"Abstract": "Test abstract",
			"RelatedTopics": [{"Text": "Related topic 1"}, {"Text": "Related topic 2"}]
		}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "test query")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Abstract: Test abstract", lines[0])
	assert.Equal(t, "Answer: Test answer", lines[1])
	assert.Equal(t, "Related: Related topic 1", lines[2])
	assert.Equal(t, "Related: Related topic 2", lines[3])
}

func TestSearchLimitsRelatedTopics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RelatedTopics": [
			{"Text": "one"}, {"Text": "two"}, {"Text": "three"}, {"Text": "four"}
		]}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, 3, strings.Count(out, "Related:"))
	assert.NotContains(t, out, "four")
}

func TestSearchSkipsTopicsWithoutText(t *testing.T) {
	// topic groups in the API response carry no Text field of their own
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RelatedTopics": [{"Name": "group"}, {"Text": "real topic"}]}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, "Related: real topic", out)
}

func TestSearchStripsResidualMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Abstract": "Plain <a href=\"/x\">linked</a> text"}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, "Abstract: Plain linked text", out)
}

func TestSearchNoResultsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "test query")

	assert.Equal(t, "No detailed results found for 'test query'", out)
}

func TestSearchRetriesThenDegradesOnServerErrors(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, 3, requests)
	assert.Equal(t, "Search failed after 3 attempts: Network error", out)
}

func TestSearchRetriesOnDecodeFailure(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, 3, requests)
	assert.Equal(t, "Search failed after 3 attempts: Network error", out)
}

func TestSearchRecoversWithinRetryBudget(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"Answer": "recovered"}`))
	}))
	defer srv.Close()

	tool := NewSearchTool(searchConfig(srv.URL))
	out := tool.Execute(context.Background(), "q")

	assert.Equal(t, 3, requests)
	assert.Equal(t, "Answer: recovered", out)
}

func TestSearchBadEndpointShortCircuits(t *testing.T) {
	cfg := searchConfig("://not-a-url")
	tool := NewSearchTool(cfg)

	out := tool.Execute(context.Background(), "q")

	assert.True(t, strings.HasPrefix(out, "Search failed:"), "got %q", out)
	assert.NotContains(t, out, "attempts")
}
