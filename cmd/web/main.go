package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"rolsa.tech/web/content"
	"rolsa.tech/web/internal/cms"
	"rolsa.tech/web/internal/config"
	"rolsa.tech/web/internal/httpserver"
	"rolsa.tech/web/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pages, err := loadPages(cfg.Content)
	if err != nil {
		return err
	}
	logger.Info("pages loaded", zap.Strings("slugs", pages.Slugs()))

	srv, err := httpserver.New(cfg.Server, httpserver.Dependencies{
		Pages:  pages,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("web server listening", zap.String("addr", cfg.Server.Addr))

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func loadPages(cfg config.ContentConfig) (*cms.Library, error) {
	var fsys fs.FS = content.Pages
	dir := content.PagesDir
	if cfg.Dir != "" {
		fsys, dir = os.DirFS(cfg.Dir), "."
	}
	return cms.Load(fsys, dir)
}
