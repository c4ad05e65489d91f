package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log"
	"mime"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"scorebuddies/internal/config"
	"scorebuddies/internal/game"
	"scorebuddies/internal/handlers"
	"scorebuddies/internal/kv"
	"scorebuddies/internal/logging"
	"scorebuddies/pkg/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	state := game.New(ctx, store,
		game.WithKey(cfg.Key),
		game.WithLanguage(cfg.Language()),
		game.WithLogger(logger.Named("game")),
	)
	hub := realtime.NewBroadcaster()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return err
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	// The event stream is long-lived, so only the regular routes get a timeout.
	handlers.NewPageHandler(state, hub, logger.Named("http"), cfg.BaseURL).RegisterRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		handlers.NewGameHandler(state, hub, logger.Named("http")).RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
		// Streams watch the request context, so tie it to shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", storeFields(store, zap.String("url", "http://localhost"+cfg.Addr()))...)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// storeFields describes the opened store for the startup log line.
func storeFields(store kv.Store, fields ...zap.Field) []zap.Field {
	switch s := store.(type) {
	case *kv.SQLite:
		return append(fields, zap.String("store", config.StoreSQLite), zap.String("db", s.Path()))
	case *kv.Memory:
		return append(fields, zap.String("store", config.StoreMemory))
	}
	return fields
}

//go:embed static/*
var embeddedStatic embed.FS
