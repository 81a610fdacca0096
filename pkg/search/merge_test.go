package search

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestMergeDedupesByLink(t *testing.T) {
	first := []Item{
		{Title: "Fed holds rates", Link: "https://example.com/fed", Snippet: "from tavily"},
		{Title: "Jobs report", Link: "https://example.com/jobs"},
	}
	second := []Item{
		{Title: "Fed holds rates steady", Link: "https://example.com/fed", Snippet: "from serper"},
		{Title: "Earnings recap", Link: "https://example.com/earnings"},
	}

	merged := Merge(first, second)

	assert.Equal(t, 3, len(merged))
	assert.Equal(t, "https://example.com/fed", merged[0].Link)
	assert.Equal(t, "from tavily", merged[0].Snippet)
	assert.Equal(t, "https://example.com/jobs", merged[1].Link)
	assert.Equal(t, "https://example.com/earnings", merged[2].Link)
}

func TestMergeFallsBackToTitle(t *testing.T) {
	merged := Merge(
		[]Item{{Title: "Untitled wire story"}},
		[]Item{{Title: "Untitled wire story"}, {Title: "Another story"}},
	)

	assert.Equal(t, 2, len(merged))
	assert.Equal(t, "Untitled wire story", merged[0].Title)
	assert.Equal(t, "Another story", merged[1].Title)
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	merged := Merge(
		[]Item{{Link: "a"}, {Link: "b"}},
		[]Item{{Link: "c"}, {Link: "a"}},
	)

	assert.Equal(t, 3, len(merged))
	assert.Equal(t, "a", merged[0].Link)
	assert.Equal(t, "b", merged[1].Link)
	assert.Equal(t, "c", merged[2].Link)
}

func TestMergeEmpty(t *testing.T) {
	assert.Equal(t, 0, len(Merge()))
	assert.Equal(t, 0, len(Merge([]Item{}, []Item{})))
}
