package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gashtstore/admin/internal/config"
	"github.com/gashtstore/admin/internal/db"
	"github.com/gashtstore/admin/internal/handlers"
	"github.com/gashtstore/admin/internal/logging"
	"github.com/gashtstore/admin/internal/middleware/csrf"
	loggingmw "github.com/gashtstore/admin/internal/middleware/logging"
	"github.com/gashtstore/admin/internal/repo"
	"github.com/gashtstore/admin/internal/service"
	"github.com/gashtstore/admin/internal/session"
	httpserver "github.com/gashtstore/admin/internal/transport/http"
	"github.com/gashtstore/admin/internal/upload"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	ctx := context.Background()
	gdb, err := db.Open(ctx, configuration.DatabasePath)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("database migrate error: %v", err)
	}

	uploads, err := upload.NewStore(configuration.UploadDir, upload.DefaultMaxBytes)
	if err != nil {
		log.Fatalf("upload dir error: %v", err)
	}

	sessions := &session.Manager{
		Secret: []byte(configuration.SecretKey),
		Secure: configuration.IsProduction(),
	}
	svc := service.New(repo.New(gdb))

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(csrf.Middleware(csrf.Config{Secure: configuration.IsProduction()}))

	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Fatalf("template error: %v", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	deps := httpserver.Deps{
		Sessions:  sessions,
		Auth:      &handlers.AuthHandler{Svc: svc, Sessions: sessions},
		Dashboard: &handlers.DashboardHandler{Svc: svc, Sessions: sessions},
		Products:  &handlers.ProductHandler{Svc: svc, Sessions: sessions, Uploads: uploads},
		Profile:   &handlers.ProfileHandler{Svc: svc, Sessions: sessions, Uploads: uploads},
		InitDB:    &handlers.InitDBHandler{DB: gdb, Svc: svc, Sessions: sessions, Cfg: configuration},
		Uploads:   &handlers.UploadHandler{Uploads: uploads},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.Addr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	logger.Info("server started", "addr", configuration.Addr, "env", configuration.AppEnv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	log.Println("shutdown complete")
}
