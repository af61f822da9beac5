package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jkcg-learning/debate/internal/domain"
)

// CreateDebate runs a debate synchronously.
// POST /v1/debates
//
// Missing input and unqualified debaters are normal outcomes and return 200
// with an aborted session. A language agent failure returns 502 with the
// partial result.
func (h *Handler) CreateDebate(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.DebateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.service.RunDebate(ctx, req, nil)
	if err != nil {
		h.logger.Error("debate failed", "error", err.Error())
		if result == nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, result)
	}

	return c.JSON(http.StatusOK, result)
}
