package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
)

type DashboardHandler struct {
	Svc      *service.StoreService
	Sessions *session.Manager
}

func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.summary")

	summary, err := h.Svc.DashboardSummary(ctx)
	if err != nil {
		l.Error("dashboard_summary_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build dashboard")
	}

	return c.Render(http.StatusOK, "dashboard.html", viewData(c, h.Sessions, "Dashboard", echo.Map{
		"Summary": summary,
	}))
}
