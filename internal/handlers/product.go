package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/models"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
	"github.com/gashtstore/admin/internal/upload"
)

type ProductHandler struct {
	Svc      *service.StoreService
	Sessions *session.Manager
	Uploads  *upload.Store
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("list_products_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	return c.Render(http.StatusOK, "products_list.html", viewData(c, h.Sessions, "Products", echo.Map{
		"Products": products,
	}))
}

func (h *ProductHandler) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "product_form.html", viewData(c, h.Sessions, "New product", echo.Map{
		"Form":    productForm{},
		"Errors":  map[string]string{},
		"Product": (*models.Product)(nil),
	}))
}

func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	form := productFormFromRequest(c)
	input, errs := form.parse()

	if len(errs) == 0 {
		imagePath, err := saveFormImage(c, h.Uploads, "image")
		if err != nil {
			l.Warn("image_upload_rejected", "error", err)
			errs["image"] = uploadErrorMessage(err)
		} else {
			input.ImagePath = imagePath
		}
	}

	if len(errs) == 0 {
		if _, err := h.Svc.CreateProduct(ctx, input); err != nil {
			if ve, ok := service.AsValidation(err); ok {
				for field, msg := range ve.Fields {
					errs[field] = msg
				}
			} else {
				l.Error("create_product_failed", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "cannot create product")
			}
		}
	}

	if len(errs) > 0 {
		return c.Render(http.StatusOK, "product_form.html", viewData(c, h.Sessions, "New product", echo.Map{
			"Form":    form,
			"Errors":  errs,
			"Product": (*models.Product)(nil),
		}))
	}

	l.Info("create_product_success")
	return redirectWithFlash(c, h.Sessions, "success", "Product created successfully.", "/products")
}

func (h *ProductHandler) EditForm(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load product")
	}

	form := productForm{
		Name:        prod.Name,
		Price:       strconv.FormatFloat(prod.Price, 'f', 2, 64),
		Category:    prod.Category,
		Stock:       strconv.Itoa(prod.Stock),
		Description: prod.Description,
	}
	return c.Render(http.StatusOK, "product_form.html", viewData(c, h.Sessions, "Edit product", echo.Map{
		"Form":    form,
		"Errors":  map[string]string{},
		"Product": prod,
	}))
}

func (h *ProductHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.edit")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load product")
	}

	form := productFormFromRequest(c)
	input, errs := form.parse()

	if len(errs) == 0 {
		imagePath, err := saveFormImage(c, h.Uploads, "image")
		if err != nil {
			l.Warn("image_upload_rejected", "error", err)
			errs["image"] = uploadErrorMessage(err)
		} else {
			input.ImagePath = imagePath
		}
	}

	if len(errs) == 0 {
		if _, err := h.Svc.EditProduct(ctx, id, input); err != nil {
			if ve, ok := service.AsValidation(err); ok {
				for field, msg := range ve.Fields {
					errs[field] = msg
				}
			} else if errors.Is(err, service.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, "product not found")
			} else {
				l.Error("edit_product_failed", "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
			}
		}
	}

	if len(errs) > 0 {
		return c.Render(http.StatusOK, "product_form.html", viewData(c, h.Sessions, "Edit product", echo.Map{
			"Form":    form,
			"Errors":  errs,
			"Product": prod,
		}))
	}

	l.Info("edit_product_success")
	return redirectWithFlash(c, h.Sessions, "success", "Product updated successfully.", "/products")
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrProductInUse):
			l.Warn("delete_product_blocked", "product_id", id)
			return redirectWithFlash(c, h.Sessions, "error",
				"This product is referenced by existing orders and cannot be deleted.", "/products")
		default:
			l.Error("delete_product_failed", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
		}
	}

	l.Info("delete_product_success")
	return redirectWithFlash(c, h.Sessions, "success", "Product deleted successfully.", "/products")
}
