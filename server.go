package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"ytdlp-direct/config"
	"ytdlp-direct/handlers"
	"ytdlp-direct/templates"
)

func newServer(cfg config.Config, h *handlers.Handler, log *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(requestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Renderer = templates.New()

	limit := extractionLimit(cfg)

	// Routes
	e.GET("/", h.IndexGet)
	e.POST("/", h.IndexPost, limit...)
	e.GET("/download", h.Download, limit...)
	e.GET("/status", h.StatusGet)
	e.GET("/health", h.Health)

	return e
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(a *app) error {
	h := handlers.New(a.cfg, a.extractor, a.versions, a.log)
	e := newServer(a.cfg, h, a.log)

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("listening on :%s", a.cfg.Port)
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.log.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
