package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/swtya/meshlint/internal/config"
	"github.com/swtya/meshlint/internal/database"
	"github.com/swtya/meshlint/internal/handler"
	"github.com/swtya/meshlint/internal/middleware"
	"github.com/swtya/meshlint/internal/repository"
	"github.com/swtya/meshlint/internal/service/lint"
	"github.com/swtya/meshlint/internal/service/watch"
	"github.com/swtya/meshlint/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Check registry, built once; per-session toggles start from its
	// defaults merged with the optional YAML override file.
	registry := lint.Builtin()
	defaults := registry.DefaultEnabled()
	overrides, err := config.LoadCheckToggles(cfg.ChecksFile)
	if err != nil {
		slog.Error("failed to load check toggles", "error", err, "path", cfg.ChecksFile)
		os.Exit(1)
	}
	for sym, on := range overrides {
		if _, known := defaults[sym]; !known {
			slog.Warn("ignoring unknown check symbol in checks file", "symbol", sym)
			continue
		}
		defaults[sym] = on
	}

	// Repositories
	runRepo := repository.NewRunRepository(pool)

	// Services
	analyzer := lint.NewAnalyzer(registry)
	hub := session.NewHub(defaults)
	board := watch.NewBoard()
	watcher := watch.New(hub, board, analyzer, cfg.AnnounceTimeout)

	// Handlers
	checkHandler := handler.NewCheckHandler(registry)
	sessionHandler := handler.NewSessionHandler(hub)
	lintHandler := handler.NewLintHandler(hub, analyzer, runRepo)
	watchHandler := handler.NewWatchHandler(watcher, board)
	runHandler := handler.NewRunHandler(runRepo, cfg.RunHistoryLimit)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))
	r.Use(chiMiddleware.Logger)
	r.Use(middleware.Recovery)

	r.Get("/health", handler.Health)
	r.Route("/api/v1", func(r chi.Router) {
		checkHandler.RegisterRoutes(r)
		sessionHandler.RegisterRoutes(r)
		lintHandler.RegisterRoutes(r)
		watchHandler.RegisterRoutes(r)
		runHandler.RegisterRoutes(r)
	})

	// Server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	if watcher.IsActive() {
		watcher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}
