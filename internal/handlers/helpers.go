package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/middleware/csrf"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
	"github.com/gashtstore/admin/internal/upload"
)

// viewData assembles the common template payload: title, CSRF token, the
// pending flash (consumed here, rendered once) and login state.
func viewData(c echo.Context, m *session.Manager, title string, extra echo.Map) echo.Map {
	data := echo.Map{
		"Title": title,
		"CSRF":  csrf.Token(c),
		"Flash": m.PopFlash(c),
	}
	_, loggedIn := m.AdminID(c)
	data["LoggedIn"] = loggedIn
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// productForm keeps the raw submitted values so a failed validation can
// re-render the form exactly as entered.
type productForm struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	Description string
}

func productFormFromRequest(c echo.Context) productForm {
	return productForm{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Price:       strings.TrimSpace(c.FormValue("price")),
		Category:    strings.TrimSpace(c.FormValue("category")),
		Stock:       strings.TrimSpace(c.FormValue("stock")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}
}

func (f productForm) parse() (service.ProductInput, map[string]string) {
	errs := map[string]string{}

	input := service.ProductInput{
		Name:        f.Name,
		Category:    f.Category,
		Description: f.Description,
	}

	if f.Price != "" {
		price, err := strconv.ParseFloat(f.Price, 64)
		if err != nil {
			errs["price"] = "Must be a valid number."
		} else {
			input.Price = price
		}
	}
	if f.Stock != "" {
		stock, err := strconv.Atoi(f.Stock)
		if err != nil {
			errs["stock"] = "Must be a valid number."
		} else {
			input.Stock = stock
		}
	}

	return input, errs
}

// saveFormImage stores the optional image from the named multipart field and
// returns its public path. An absent file is not an error.
func saveFormImage(c echo.Context, store *upload.Store, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return "", nil
	}

	name, err := store.Save(fh)
	if err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return "Image exceeds the maximum allowed size."
	case errors.Is(err, upload.ErrDisallowedType):
		return "Only image files are allowed."
	default:
		return "There was a problem saving the image. Try again."
	}
}

func redirectWithFlash(c echo.Context, m *session.Manager, kind, message, location string) error {
	if err := m.AddFlash(c, kind, message); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, location)
}
