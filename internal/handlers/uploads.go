package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/upload"
)

type UploadHandler struct {
	Uploads *upload.Store
}

// Serve streams a previously uploaded file. Unsafe or unknown filenames are
// a plain 404, no detail leaks about the filesystem.
func (h *UploadHandler) Serve(c echo.Context) error {
	name := c.Param("filename")

	f, err := h.Uploads.Open(name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	http.ServeContent(c.Response(), c.Request(), name, fi.ModTime(), f)
	return nil
}
