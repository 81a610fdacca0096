package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNewTavilyClientFallback(t *testing.T) {
	serper := NewSerperClient("serper-key")

	provider := NewTavilyClient("", serper)

	assert.Equal(t, "Serper", provider.Name())

	provider = NewTavilyClient("tavily-key", serper)

	assert.Equal(t, "Tavily", provider.Name())
}

func TestTavilySearch(t *testing.T) {
	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"title":   "Treasury yields climb",
				"url":     "https://example.com/yields",
				"content": "The 10-year rose after the auction.",
			},
		},
	}

	var gotBody tavilyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &TavilyClient{
		apiKey:     "tavily-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	items, err := client.Search(context.Background(), "US markets", 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, "tavily-key", gotBody.APIKey)
	assert.Equal(t, "US markets", gotBody.Query)
	assert.Equal(t, 5, gotBody.MaxResults)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Treasury yields climb", items[0].Title)
	assert.Equal(t, "https://example.com/yields", items[0].Link)
	assert.Equal(t, "The 10-year rose after the auction.", items[0].Snippet)
}

func TestTavilySearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &TavilyClient{
		apiKey:     "tavily-key",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	_, err := client.Search(context.Background(), "US markets", 5)

	assert.NotEqual(t, nil, err)
}
