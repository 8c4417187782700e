package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gmelli/agentic-planner-cli/internal/config"
	"github.com/gmelli/agentic-planner-cli/internal/models"
)

// SearchTool queries the DuckDuckGo instant-answer API. Network, HTTP-status
// and decode failures are retried with a flat delay; anything left after the
// last attempt degrades to an error string.
type SearchTool struct {
	cfg     config.SearchConfig
	client  *http.Client
	Verbose bool
}

func NewSearchTool(cfg config.SearchConfig) *SearchTool {
	return &SearchTool{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (s *SearchTool) Name() string { return models.ToolSearchWeb }

type searchResponse struct {
	Abstract      string         `json:"Abstract"`
	Answer        string         `json:"Answer"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text string `json:"Text"`
}

func (s *SearchTool) Execute(ctx context.Context, query string) string {
	endpoint, err := url.Parse(s.cfg.Endpoint)
	if err != nil {
		return fmt.Sprintf("Search failed: %v", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")
	endpoint.RawQuery = params.Encode()

	var data searchResponse
	var fetched bool
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if s.Verbose && attempt > 1 {
			log.Printf("[SEARCH] retrying (attempt %d/%d)", attempt, s.cfg.MaxAttempts)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return fmt.Sprintf("Search failed: %v", err)
		}
		if err := s.fetch(req, &data); err != nil {
			if attempt < s.cfg.MaxAttempts {
				time.Sleep(s.cfg.RetryDelay)
				continue
			}
			return fmt.Sprintf("Search failed after %d attempts: Network error", s.cfg.MaxAttempts)
		}
		fetched = true
		break
	}
	if !fetched {
		return fmt.Sprintf("Search failed after %d attempts: Network error", s.cfg.MaxAttempts)
	}

	return s.format(query, data)
}

func (s *SearchTool) fetch(req *http.Request, out *searchResponse) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("search status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// format joins whichever sections are present, in fixed priority order:
// abstract, instant answer, then the first few related topics.
func (s *SearchTool) format(query string, data searchResponse) string {
	var sections []string
	if data.Abstract != "" {
		sections = append(sections, "Abstract: "+stripMarkup(data.Abstract))
	}
	if data.Answer != "" {
		sections = append(sections, "Answer: "+stripMarkup(data.Answer))
	}
	count := 0
	for _, topic := range data.RelatedTopics {
		if count >= s.cfg.MaxRelatedTopics {
			break
		}
		if strings.TrimSpace(topic.Text) == "" {
			continue
		}
		sections = append(sections, "Related: "+stripMarkup(topic.Text))
		count++
	}
	if len(sections) == 0 {
		return fmt.Sprintf("No detailed results found for '%s'", query)
	}
	if s.Verbose {
		log.Printf("[SEARCH] %d sections extracted for %q", len(sections), query)
	}
	return strings.Join(sections, "\n")
}
