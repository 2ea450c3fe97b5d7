package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/web"
)

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}

// Renderer serves the embedded templates. Each page is parsed together with
// the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		base := path.Base(name)
		if base == "layout.html" {
			continue
		}
		t, err := template.New(base).Funcs(templateFuncs).ParseFS(web.Templates, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[base] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// HTTPErrorHandler renders the 404/500 pages. Error details stay in the log,
// never in the response body.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= 500 {
		logging.FromContext(c.Request().Context()).Error("unhandled error", "status", code, "error", err)
	}

	var renderErr error
	switch code {
	case http.StatusNotFound:
		renderErr = c.Render(code, "404.html", echo.Map{"Title": "Not found"})
	case http.StatusInternalServerError:
		renderErr = c.Render(code, "500.html", echo.Map{"Title": "Error"})
	default:
		renderErr = c.String(code, http.StatusText(code))
	}
	if renderErr != nil {
		_ = c.String(code, http.StatusText(code))
	}
}
