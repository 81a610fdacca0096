package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketbrief/pkg/llm"
)

const translateMaxTokens = 800

var languageCodes = map[string]string{
	"arabic": "ar",
	"hindi":  "hi",
	"hebrew": "he",
}

// Translator renders the English digest into each target language.
type Translator struct {
	generator llm.Generator
	delay     time.Duration
}

// NewTranslator builds a Translator. delay is slept between successive
// generation calls to respect the capability's rate limits.
func NewTranslator(g llm.Generator, delay time.Duration) *Translator {
	return &Translator{generator: g, delay: delay}
}

// TranslateAll adds one digest per target language to the set, in order,
// translating the set's English entry. Per-language generation failures are
// folded into that language's digest under ErrorTag; the returned slice
// names the languages that degraded.
func (t *Translator) TranslateAll(ctx context.Context, set *Set, languages []string) []string {
	english := set.English()

	var degraded []string
	for i, lang := range languages {
		if i > 0 && t.delay > 0 {
			time.Sleep(t.delay)
		}

		out, err := t.generator.Generate(ctx, buildTranslatePrompt(english, lang), translateMaxTokens, 0)
		if err != nil {
			slog.Error("translation failed", "language", lang, "error", err)
			set.Add(lang, ErrorTag+err.Error())
			degraded = append(degraded, lang)
			continue
		}

		set.Add(lang, out)
	}

	return degraded
}

func buildTranslatePrompt(text, lang string) string {
	code, ok := languageCodes[strings.ToLower(lang)]
	if !ok {
		code = lang
	}
	return fmt.Sprintf(
		"Translate the following summary into %s (language code: %s).\n"+
			"Preserve the original formatting (bullets, short paragraphs). Do not add or remove content.\n\n"+
			"ORIGINAL:\n%s\n\nTRANSLATED:\n",
		lang, code, text,
	)
}
