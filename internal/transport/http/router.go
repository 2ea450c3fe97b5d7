package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/gashtstore/admin/internal/handlers"
	"github.com/gashtstore/admin/internal/session"
	"github.com/gashtstore/admin/web"
)

type Deps struct {
	Sessions  *session.Manager
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Products  *handlers.ProductHandler
	Profile   *handlers.ProfileHandler
	InitDB    *handlers.InitDBHandler
	Uploads   *handlers.UploadHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	e.GET("/login", d.Auth.LoginForm)
	e.POST("/login", d.Auth.Login)
	e.POST("/logout", d.Auth.Logout)

	e.GET("/init-db", d.InitDB.InitDB)
	e.GET("/uploads/:filename", d.Uploads.Serve)

	admin := e.Group("", d.Sessions.RequireLogin)

	admin.GET("/", d.Dashboard.Dashboard)
	admin.GET("/dashboard", d.Dashboard.Dashboard)

	admin.GET("/products", d.Products.List)
	admin.GET("/products/create", d.Products.CreateForm)
	admin.POST("/products/create", d.Products.Create)
	admin.GET("/products/:id/edit", d.Products.EditForm)
	admin.POST("/products/:id/edit", d.Products.Edit)
	admin.POST("/products/:id/delete", d.Products.Delete)

	admin.GET("/profile", d.Profile.Show)
	admin.POST("/profile", d.Profile.Update)
}
