// Package v1 provides the version 1 HTTP handlers.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
	logger  *logging.Logger
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Debate API
	e.POST("/v1/debates", h.CreateDebate)
	e.GET("/v1/debates/stream", h.StreamDebate)

	// Usage API
	e.GET("/v1/runs/:run_id/calls", h.GetRunCalls)
	e.GET("/v1/models", h.ListModels)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
