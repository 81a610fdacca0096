package digest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTranslateAll(t *testing.T) {
	gen := &fakeGenerator{out: "translated digest"}
	tr := NewTranslator(gen, 0)

	set := NewSet()
	set.Add("english", "- bullet one\n- bullet two\n- bullet three\nClosing paragraph.")

	degraded := tr.TranslateAll(context.Background(), set, []string{"arabic", "hindi", "hebrew"})

	assert.Equal(t, 0, len(degraded))
	assert.Equal(t, 3, len(gen.prompts))
	assert.Equal(t, []string{"english", "arabic", "hindi", "hebrew"}, set.Languages())
	assert.Equal(t, "translated digest", set.Get("arabic"))
	assert.Equal(t, "translated digest", set.Get("hebrew"))

	assert.Equal(t, true, strings.Contains(gen.prompts[0], "into arabic (language code: ar)"))
	assert.Equal(t, true, strings.Contains(gen.prompts[1], "into hindi (language code: hi)"))
	assert.Equal(t, true, strings.Contains(gen.prompts[0], "bullet one"))
	assert.Equal(t, true, strings.Contains(gen.prompts[0], "Do not add or remove content"))
}

func TestTranslateAllUnknownLanguageCode(t *testing.T) {
	gen := &fakeGenerator{out: "translated"}
	tr := NewTranslator(gen, 0)

	set := NewSet()
	set.Add("english", "digest")

	tr.TranslateAll(context.Background(), set, []string{"french"})

	assert.Equal(t, true, strings.Contains(gen.prompts[0], "into french (language code: french)"))
}

func TestTranslateAllDegraded(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	tr := NewTranslator(gen, 0)

	set := NewSet()
	set.Add("english", "digest")

	degraded := tr.TranslateAll(context.Background(), set, []string{"arabic", "hindi"})

	assert.Equal(t, []string{"arabic", "hindi"}, degraded)
	assert.Equal(t, true, strings.HasPrefix(set.Get("arabic"), ErrorTag))
	assert.Equal(t, 3, set.Len())
}

func TestSetOrderAndEnglish(t *testing.T) {
	set := NewSet()
	set.Add("English", "english text")
	set.Add("arabic", "arabic text")
	set.Add("arabic", "arabic text v2")
	set.Add("hindi", "hindi text")

	assert.Equal(t, []string{"english", "arabic", "hindi"}, set.Languages())
	assert.Equal(t, "english text", set.English())
	assert.Equal(t, "arabic text v2", set.Get("ARABIC"))

	short := NewSet()
	short.Add("en", "short form")
	assert.Equal(t, "short form", short.English())

	assert.Equal(t, true, IsEnglish("en"))
	assert.Equal(t, true, IsEnglish("English"))
	assert.Equal(t, false, IsEnglish("hebrew"))
}
