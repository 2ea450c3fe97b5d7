package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
)

type AuthHandler struct {
	Svc      *service.StoreService
	Sessions *session.Manager
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	if _, ok := h.Sessions.AdminID(c); ok {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Render(http.StatusOK, "login.html", viewData(c, h.Sessions, "Sign in", echo.Map{
		"Username": "",
	}))
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	admin, err := h.Svc.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "username", username)
			return c.Render(http.StatusOK, "login.html", viewData(c, h.Sessions, "Sign in", echo.Map{
				"Username": username,
				"Error":    "Invalid username or password.",
			}))
		}
		l.Error("login_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign in")
	}

	if err := h.Sessions.SetSession(c, admin.ID); err != nil {
		l.Error("session_issue_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign in")
	}

	l.Info("login_success", "admin_id", admin.ID)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sessions.ClearSession(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
