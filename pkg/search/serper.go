package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const serperURL = "https://api.serper.dev/search"

// mockResult is returned when no Serper key is configured, keeping the
// pipeline runnable end to end without network access.
var mockResult = Item{
	Title:   "Mock: US markets rally on strong jobs data",
	Link:    "https://example.com/mock/us-markets-rally",
	Snippet: "S&P 500 closed higher after stronger-than-expected payrolls.",
	Image:   "",
}

type SerperClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *SerperClient) Name() string {
	return "Serper"
}

func (c *SerperClient) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	if c.apiKey == "" {
		slog.Warn("SERPER_API_KEY not set, returning mock search result")
		return []Item{mockResult}, nil
	}

	body, err := json.Marshal(serperRequest{Query: query, Num: limit})
	if err != nil {
		return nil, fmt.Errorf("serper encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper search: unexpected status %d", resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serper decode: %w", err)
	}

	items := make([]Item, 0, len(raw.Organic))
	for _, r := range raw.Organic {
		if len(items) >= limit {
			break
		}
		items = append(items, Item{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Image:   r.Image,
		})
	}

	return items, nil
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Image   string `json:"image"`
}
