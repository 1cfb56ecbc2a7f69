package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/mangod/internal/config"
	"github.com/udisondev/mangod/internal/content"
)

const ConfigPath = "config/content.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("MANGOD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadContent(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	slog.Info("mangod content check starting", "data_dir", cfg.DataDir)

	cat, err := content.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	defer cat.Close()

	slog.Info("content ok",
		"projections", len(cat.Projections),
		"slays", len(cat.Slays),
		"brands", len(cat.Brands),
		"curses", len(cat.Curses),
		"activations", len(cat.Activations),
		"properties", len(cat.Properties),
		"calculations", len(cat.Calculations),
		"kinds", len(cat.Kinds),
		"egos", len(cat.Egos),
		"artifacts", len(cat.Artifacts))

	return nil
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
