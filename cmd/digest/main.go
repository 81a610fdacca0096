package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"marketbrief/internal/config"
	"marketbrief/internal/pipeline"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if !runRequested(os.Args[1:]) {
		fmt.Println("Daily financial digest runner. Run with --run after configuring API keys.")
		return
	}

	cfg := config.Load()
	p := pipeline.FromConfig(cfg)

	completed, results := p.Run(context.Background())
	for _, r := range results {
		if r.Degraded {
			slog.Warn("stage degraded", "stage", r.Stage, "reason", r.Reason)
		}
	}

	if !completed {
		fmt.Println("Run did not complete. See logs for details.")
		os.Exit(1)
	}
	fmt.Println("Run completed — check the output directory for the PDF and logs.")
}

func runRequested(args []string) bool {
	for _, a := range args {
		if a == "--run" || a == "run" {
			return true
		}
	}
	return false
}
