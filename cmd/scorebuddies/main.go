package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"scorebuddies/internal/cli"
	"scorebuddies/internal/config"
	"scorebuddies/internal/game"
	"scorebuddies/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

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
	root := cli.NewRootCommand(&cli.App{State: state, Logger: logger.Named("cli")})
	return root.ExecuteContext(ctx)
}
