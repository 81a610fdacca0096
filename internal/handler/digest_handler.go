package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketbrief/internal/pipeline"
)

// Runner triggers one digest run.
type Runner interface {
	Run(ctx context.Context) (bool, []pipeline.StageResult)
}

type DigestHandler struct {
	runner Runner
}

func NewDigestHandler(runner Runner) *DigestHandler {
	return &DigestHandler{runner: runner}
}

// RunNow executes the pipeline synchronously and reports the per-stage
// outcome.
func (h *DigestHandler) RunNow(c *gin.Context) {
	completed, results := h.runner.Run(c.Request.Context())

	stages := make([]stageDTO, 0, len(results))
	for _, r := range results {
		stages = append(stages, stageDTO{Stage: r.Stage, Degraded: r.Degraded, Reason: r.Reason})
	}

	c.JSON(http.StatusOK, runResponse{Completed: completed, Stages: stages})
}

func (h *DigestHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type runResponse struct {
	Completed bool       `json:"completed"`
	Stages    []stageDTO `json:"stages"`
}

type stageDTO struct {
	Stage    string `json:"stage"`
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
}
