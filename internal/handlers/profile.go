package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
	"github.com/gashtstore/admin/internal/upload"
)

type ProfileHandler struct {
	Svc      *service.StoreService
	Sessions *session.Manager
	Uploads  *upload.Store
}

type profileForm struct {
	Username    string
	DisplayName string
}

func (h *ProfileHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()

	admin, err := h.Svc.Profile(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "admin profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load profile")
	}

	return c.Render(http.StatusOK, "profile.html", viewData(c, h.Sessions, "Profile", echo.Map{
		"Admin":  admin,
		"Form":   profileForm{Username: admin.Username, DisplayName: admin.DisplayName},
		"Errors": map[string]string{},
	}))
}

func (h *ProfileHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update")

	admin, err := h.Svc.Profile(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "admin profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load profile")
	}

	form := profileForm{
		Username:    strings.TrimSpace(c.FormValue("username")),
		DisplayName: strings.TrimSpace(c.FormValue("display_name")),
	}
	input := service.ProfileInput{
		Username:    form.Username,
		DisplayName: form.DisplayName,
	}

	// A failed avatar upload keeps the previous file and reports it, the
	// rest of the profile still saves.
	avatarErr := ""
	avatarPath, err := saveFormImage(c, h.Uploads, "avatar")
	if err != nil {
		l.Warn("avatar_upload_rejected", "error", err)
		avatarErr = "There was a problem saving your avatar, so the old one was kept."
	} else {
		input.AvatarPath = avatarPath
	}

	if _, err := h.Svc.UpdateProfile(ctx, input); err != nil {
		if ve, ok := service.AsValidation(err); ok {
			return c.Render(http.StatusOK, "profile.html", viewData(c, h.Sessions, "Profile", echo.Map{
				"Admin":  admin,
				"Form":   form,
				"Errors": ve.Fields,
			}))
		}
		l.Error("update_profile_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update profile")
	}

	l.Info("update_profile_success")
	if avatarErr != "" {
		return redirectWithFlash(c, h.Sessions, "error", avatarErr, "/profile")
	}
	return redirectWithFlash(c, h.Sessions, "success", "Profile updated successfully.", "/profile")
}
