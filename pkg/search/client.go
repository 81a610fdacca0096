package search

import "context"

// Item is a single candidate news result returned by a provider.
type Item struct {
	Title   string
	Link    string
	Snippet string
	Image   string
}

// Provider fetches candidate news items for a query. Implementations return
// an empty slice, not an error, when the search simply has no hits.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Item, error)
	Name() string
}
