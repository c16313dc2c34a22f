package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtnitsch/page-digest/internal/messaging"
	"github.com/dtnitsch/page-digest/internal/pages"
	"github.com/dtnitsch/page-digest/internal/state"
	"github.com/dtnitsch/page-digest/pkg/store"
	"github.com/dtnitsch/page-digest/pkg/summarizer"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func ServeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	settingsStore, err := openStore(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer settingsStore.Close()

	settings, err := settingsStore.Load(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	apiKey := settings.APIKey
	if env := os.Getenv("OPENROUTER_API_KEY"); env != "" {
		apiKey = env
	}
	model := settings.Model
	if env := os.Getenv("PAGE_DIGEST_MODEL"); env != "" {
		model = env
	}

	client := summarizer.New(summarizer.Config{
		APIKey: apiKey,
		Model:  model,
	})
	router := messaging.NewRouter(client, pages.NewSource(nil), settingsStore, state.NewStore(), logger)

	e := newEcho(logger)
	NewHandler(router).Register(e)

	addr := c.String("addr")
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr, "model", model)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func openStore(path string) (*store.Store, error) {
	if path != "" {
		return store.OpenAt(path)
	}
	return store.Open()
}

func newEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status)
			return nil
		},
	}))
	return e
}
