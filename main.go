package main

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

	"js-portal/pkg/config"
	"js-portal/pkg/logging"
	"js-portal/pkg/server"
	"js-portal/pkg/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Initialize config
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(config.LogLevel)
	slog.SetDefault(logger)

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	if config.SessionSecret == config.DefaultSessionSecret {
		logger.Warn("SESSION_SECRET not set, using development secret")
	}

	// Decode the catalog up front so a broken file fails at start, not on first request.
	if _, err := services.GetCatalog(); err != nil {
		logger.Error("load catalog", "error", err)
		os.Exit(1)
	}

	r, err := server.NewRouter(logger)
	if err != nil {
		logger.Error("init router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("js portal listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
