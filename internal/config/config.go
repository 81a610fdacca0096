package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything one digest run needs. It is built once in main
// and handed to the pipeline, so tests can construct their own instead of
// reading process-wide state.
type Config struct {
	SerperAPIKey  string
	TavilyAPIKey  string
	FinnhubAPIKey string

	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	TelegramBotToken string
	TelegramChatID   string

	Languages      []string
	TranslateDelay time.Duration
	MaxImages      int
	ResultLimit    int
	OutputDir      string

	BindAddr string
}

// Load builds a Config from environment variables with defaults.
func Load() *Config {
	return &Config{
		SerperAPIKey:  os.Getenv("SERPER_API_KEY"),
		TavilyAPIKey:  os.Getenv("TAVILY_API_KEY"),
		FinnhubAPIKey: os.Getenv("FINNHUB_API_KEY"),

		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHANNEL_ID"),

		Languages:      splitAndTrim(getEnv("DIGEST_LANGUAGES", "arabic,hindi,hebrew")),
		TranslateDelay: getDuration("TRANSLATE_DELAY", "500ms"),
		MaxImages:      getInt("DIGEST_MAX_IMAGES", 2),
		ResultLimit:    getInt("SEARCH_RESULT_LIMIT", 5),
		OutputDir:      getEnv("OUTPUT_DIR", "."),

		BindAddr: getEnv("BIND_ADDR", ":8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
