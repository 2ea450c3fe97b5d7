package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gashtstore/admin/internal/config"
	"github.com/gashtstore/admin/internal/db"
	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
)

// InitDBHandler exposes the one-shot schema+seed route. It is a local
// development convenience: hidden in production unless ALLOW_INIT_DB=1, open
// only for the very first run (no admin yet), authenticated afterwards.
type InitDBHandler struct {
	DB       *gorm.DB
	Svc      *service.StoreService
	Sessions *session.Manager
	Cfg      *config.Config
}

func (h *InitDBHandler) InitDB(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "initdb")

	if h.Cfg.IsProduction() && !h.Cfg.AllowInitDB {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := db.Migrate(h.DB); err != nil {
		l.Error("migrate_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot initialize database")
	}

	admins, err := h.Svc.Repo.CountAdmins(ctx)
	if err != nil {
		l.Error("initdb_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot initialize database")
	}
	if admins > 0 {
		if _, ok := h.Sessions.AdminID(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.String(http.StatusOK, "Database already initialized; nothing to do.")
	}

	seeded, err := h.Svc.Seed(ctx, h.Cfg.AdminPass)
	if err != nil {
		l.Error("seed_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot initialize database")
	}
	if !seeded {
		return c.String(http.StatusOK, "Database already initialized; nothing to do.")
	}

	l.Info("seed_success")
	return c.String(http.StatusOK, "Database initialized with sample data.")
}
