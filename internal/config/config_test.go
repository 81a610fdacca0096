package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LLM_PROVIDER", "DIGEST_LANGUAGES", "TRANSLATE_DELAY",
		"DIGEST_MAX_IMAGES", "SEARCH_RESULT_LIMIT", "OUTPUT_DIR", "BIND_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, []string{"arabic", "hindi", "hebrew"}, cfg.Languages)
	assert.Equal(t, 500*time.Millisecond, cfg.TranslateDelay)
	assert.Equal(t, 2, cfg.MaxImages)
	assert.Equal(t, 5, cfg.ResultLimit)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, ":8080", cfg.BindAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("DIGEST_LANGUAGES", "French, german ,spanish")
	t.Setenv("TRANSLATE_DELAY", "2s")
	t.Setenv("DIGEST_MAX_IMAGES", "3")
	t.Setenv("SEARCH_RESULT_LIMIT", "10")
	t.Setenv("OUTPUT_DIR", "/tmp/digests")

	cfg := Load()

	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, []string{"french", "german", "spanish"}, cfg.Languages)
	assert.Equal(t, 2*time.Second, cfg.TranslateDelay)
	assert.Equal(t, 3, cfg.MaxImages)
	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, "/tmp/digests", cfg.OutputDir)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("TRANSLATE_DELAY", "soon")
	t.Setenv("DIGEST_MAX_IMAGES", "two")

	cfg := Load()

	assert.Equal(t, 500*time.Millisecond, cfg.TranslateDelay)
	assert.Equal(t, 2, cfg.MaxImages)
}
