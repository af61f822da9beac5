package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jkcg-learning/debate/internal/domain"
)

// GetRunCalls returns the metered language agent calls of a run.
// GET /v1/runs/:run_id/calls?stage=debate_loop,adjudication
func (h *Handler) GetRunCalls(c echo.Context) error {
	ctx := c.Request().Context()
	runID := c.Param("run_id")

	var stages []domain.Stage
	if raw := c.QueryParam("stage"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				stages = append(stages, domain.Stage(s))
			}
		}
	}

	report, err := h.service.GetUsage(ctx, runID, stages)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, report)
}

// ListModels lists the models served by the LLM endpoint.
// GET /v1/models
func (h *Handler) ListModels(c echo.Context) error {
	ctx := c.Request().Context()

	models, err := h.service.ListModels(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"models": models,
	})
}
