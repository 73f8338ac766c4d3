package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/dashboard"
	"github.com/barberdesk/core-service/internal/pkg/httperr"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	now    func() time.Time
	logger *zap.Logger
}

// NewDashboardHandler takes the clock as a dependency; the usecase itself
// never samples the wall clock.
func NewDashboardHandler(uc dashboard.UseCase, now func() time.Time, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, now: now, logger: log}
}

func (h *DashboardHandler) Register(e *echo.Echo) {
	e.GET("/dashboard", h.Snapshot)
}

// Snapshot serves the same-day metrics. An optional RFC3339 "at" query
// parameter overrides the reference instant, which the console uses for
// day-review views.
func (h *DashboardHandler) Snapshot(c echo.Context) error {
	now := h.now()
	if at := c.QueryParam("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid at parameter, expected RFC3339"})
		}
		now = parsed
	}

	snap, err := h.uc.Snapshot(c.Request().Context(), now)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
