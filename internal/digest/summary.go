package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"marketbrief/pkg/llm"
	"marketbrief/pkg/search"
)

const (
	// NoResultsSentinel is the digest produced, without any generation call,
	// when there is nothing to summarize.
	NoResultsSentinel = "No results found in the last hour."

	// ErrorTag marks digest text that carries a generation failure instead of
	// real content. It is visible to the end reader on purpose.
	ErrorTag = "[LLM_ERROR] "

	maxContextItems  = 6
	maxSnippetChars  = 200
	summaryMaxTokens = 600
)

const summaryInstruction = "You are a succinct financial news summarizer. " +
	"Given the following search results from US financial news, write a short, clear summary (under 500 words) " +
	"focused on the most important market moves, drivers, and trading activity. " +
	"Use 3 short bullets and a 2-4 sentence paragraph. Do not invent facts; if uncertain, say 'reported'."

// Summarizer produces the English digest from a run's news items.
type Summarizer struct {
	generator llm.Generator
}

func NewSummarizer(g llm.Generator) *Summarizer {
	return &Summarizer{generator: g}
}

// Summarize bounds the prompt to the first six items and issues one
// zero-temperature generation call. Generation failures are folded into the
// returned text under ErrorTag so downstream stages still have a digest;
// degraded reports that case.
func (s *Summarizer) Summarize(ctx context.Context, items []search.Item) (text string, degraded bool) {
	if len(items) == 0 {
		return NoResultsSentinel, false
	}

	out, err := s.generator.Generate(ctx, buildSummaryPrompt(items), summaryMaxTokens, 0)
	if err != nil {
		slog.Error("summary generation failed", "error", err)
		return ErrorTag + err.Error(), true
	}

	return out, false
}

func buildSummaryPrompt(items []search.Item) string {
	var sb strings.Builder
	sb.WriteString(summaryInstruction)
	sb.WriteString("\n\nCONTEXT:\n")
	for i, item := range items {
		if i >= maxContextItems {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %s (%s)\n", i+1, item.Title, truncate(item.Snippet, maxSnippetChars), item.Link))
	}
	sb.WriteString("\nOUTPUT:\n")
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
