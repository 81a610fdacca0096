package pipeline

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"marketbrief/internal/config"
	"marketbrief/internal/digest"
	"marketbrief/internal/publish"
	"marketbrief/internal/report"
	"marketbrief/pkg/llm"
	"marketbrief/pkg/search"
)

// Stage names, in execution order.
const (
	StageIngest    = "ingest"
	StageSummarize = "summarize"
	StageTranslate = "translate"
	StageRender    = "render"
	StagePublish   = "publish"
)

const newsQuery = "US markets news last hour OR Wall Street today OR S&P 500 NASDAQ Dow Jones earnings"

// StageResult records whether a stage completed cleanly or degraded, and why.
type StageResult struct {
	Stage    string
	Degraded bool
	Reason   string
}

// Renderer abstracts the document layer so tests can capture its inputs.
type Renderer interface {
	Render(set *digest.Set, images []string, date time.Time) (string, error)
}

// Pipeline wires the digest stages together and applies the best-effort
// failure policy: an empty ingest ends the run early, and everything after a
// successful ingest is absorbed into stage results instead of aborting.
type Pipeline struct {
	cfg        *config.Config
	providers  []search.Provider
	summarizer *digest.Summarizer
	translator *digest.Translator
	renderer   Renderer
	publisher  publish.Publisher
	now        func() time.Time
}

func New(cfg *config.Config, providers []search.Provider, gen llm.Generator, renderer Renderer, pub publish.Publisher) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		providers:  providers,
		summarizer: digest.NewSummarizer(gen),
		translator: digest.NewTranslator(gen, cfg.TranslateDelay),
		renderer:   renderer,
		publisher:  pub,
		now:        time.Now,
	}
}

// FromConfig wires the production collaborators: Tavily falling back to
// Serper, Serper itself, optional FinnHub market news, the configured
// generation backend, the PDF renderer, and Telegram delivery.
func FromConfig(cfg *config.Config) *Pipeline {
	serper := search.NewSerperClient(cfg.SerperAPIKey)
	providers := []search.Provider{
		search.NewTavilyClient(cfg.TavilyAPIKey, serper),
		serper,
	}
	if cfg.FinnhubAPIKey != "" {
		providers = append(providers, search.NewFinnHubClient(cfg.FinnhubAPIKey))
	}

	gen := llm.New(cfg.LLMProvider, cfg.OpenAIAPIKey, cfg.AnthropicAPIKey, cfg.LLMModel)

	return New(cfg, providers, gen, report.NewRenderer(cfg.OutputDir), publish.FromConfig(cfg.TelegramBotToken, cfg.TelegramChatID))
}

// Run executes one digest run. completed is true when ingestion yielded
// results and a document was produced, even if later stages degraded; it is
// false when there was nothing to digest or something unexpected escaped a
// stage.
func (p *Pipeline) Run(ctx context.Context) (completed bool, results []StageResult) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("digest run aborted", "panic", rec, "stack", string(debug.Stack()))
			completed = false
		}
	}()

	items := p.ingest(ctx)
	if len(items) == 0 {
		slog.Warn("no results; ending run")
		return false, append(results, StageResult{
			Stage:    StageIngest,
			Degraded: true,
			Reason:   "no results from any provider",
		})
	}
	results = append(results, StageResult{Stage: StageIngest})

	set := digest.NewSet()
	english, degraded := p.summarizer.Summarize(ctx, items)
	set.Add("english", english)
	results = append(results, stageResult(StageSummarize, degraded, "generation returned an error tag"))

	images := digest.SelectImages(items, p.cfg.MaxImages)

	failed := p.translator.TranslateAll(ctx, set, p.cfg.Languages)
	results = append(results, stageResult(StageTranslate, len(failed) > 0, "degraded languages: "+strings.Join(failed, ", ")))

	date := p.now()
	path, err := p.renderer.Render(set, images, date)
	if err != nil {
		slog.Error("render failed", "error", err)
		results = append(results, StageResult{Stage: StageRender, Degraded: true, Reason: err.Error()})
		return false, results
	}
	results = append(results, StageResult{Stage: StageRender})

	caption := "Daily Market Summary - " + date.Format("20060102")
	delivered := p.publisher.Send(path, caption)
	results = append(results, stageResult(StagePublish, !delivered, "document not delivered"))

	return true, results
}

// ingest queries each provider in order, treating individual failures as zero
// results, then merges and dedupes what came back.
func (p *Pipeline) ingest(ctx context.Context) []search.Item {
	lists := make([][]search.Item, 0, len(p.providers))
	for _, prov := range p.providers {
		items, err := prov.Search(ctx, newsQuery, p.cfg.ResultLimit)
		if err != nil {
			slog.Error("search failed", "provider", prov.Name(), "error", err)
			continue
		}
		slog.Info("search complete", "provider", prov.Name(), "results", len(items))
		lists = append(lists, items)
	}

	merged := search.Merge(lists...)
	slog.Info("ingest complete", "unique_results", len(merged))
	return merged
}

func stageResult(stage string, degraded bool, reason string) StageResult {
	if !degraded {
		return StageResult{Stage: stage}
	}
	return StageResult{Stage: stage, Degraded: true, Reason: reason}
}
