package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const tavilyURL = "https://api.tavily.com/search"

// NewTavilyClient returns a Tavily-backed provider, or the fallback provider
// unchanged when no Tavily key is configured. The selection happens at
// construction time so the call path has a single shape.
func NewTavilyClient(apiKey string, fallback Provider) Provider {
	if apiKey == "" {
		return fallback
	}
	return &TavilyClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type TavilyClient struct {
	apiKey     string
	httpClient *http.Client
}

func (c *TavilyClient) Name() string {
	return "Tavily"
}

func (c *TavilyClient) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	body, err := json.Marshal(tavilyRequest{APIKey: c.apiKey, Query: query, MaxResults: limit})
	if err != nil {
		return nil, fmt.Errorf("tavily encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search: unexpected status %d", resp.StatusCode)
	}

	var raw tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("tavily decode: %w", err)
	}

	items := make([]Item, 0, len(raw.Results))
	for _, r := range raw.Results {
		if len(items) >= limit {
			break
		}
		items = append(items, Item{
			Title:   r.Title,
			Link:    r.URL,
			Snippet: r.Content,
		})
	}

	return items, nil
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}
