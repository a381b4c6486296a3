package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jekabolt/resto-manager/app"
	"github.com/jekabolt/resto-manager/config"
	"github.com/jekabolt/resto-manager/internal/store"
	"github.com/spf13/cobra"
)

func setupLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.Level(cfg.Logger.Level),
		AddSource: cfg.Logger.AddSource,
	}))
	slog.SetDefault(logger)
	return logger
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := setupLogger(cfg)

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		a.Stop(ctx)
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}

	return nil
}

func migrateDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	setupLogger(cfg)

	cfg.DB.Automigrate = true
	ms, err := store.New(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("cannot migrate database %v", err.Error())
	}
	ms.Close()
	return nil
}
