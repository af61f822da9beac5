// Package http provides the HTTP server implementation for the debate service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/service"
	v1 "github.com/jkcg-learning/debate/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server.
// It serves debate runs, the live event stream and usage queries.
func NewServer(svc *service.Service, logger *logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc, logger)

	// Register Routes
	v1Handler.RegisterRoutes(e)

	return e
}
