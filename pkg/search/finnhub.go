package search

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

// Search satisfies Provider. The market-news endpoint has no query parameter,
// so the query is ignored and limit caps the returned items.
func (c *FinnHubClient) Search(ctx context.Context, _ string, limit int) ([]Item, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub market news: %w", err)
	}

	items := make([]Item, 0, limit)
	for _, news := range res {
		if len(items) >= limit {
			break
		}

		item := Item{}
		if news.Headline != nil {
			item.Title = *news.Headline
		}
		if news.Url != nil {
			item.Link = *news.Url
		}
		if news.Summary != nil {
			item.Snippet = *news.Summary
		}
		if news.Image != nil {
			item.Image = *news.Image
		}

		items = append(items, item)
	}

	return items, nil
}
