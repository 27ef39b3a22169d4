package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-quest/internal/config"
	"github.com/vovakirdan/color-quest/internal/history"
	"github.com/vovakirdan/color-quest/internal/navigator"
	"github.com/vovakirdan/color-quest/internal/storage"
)

// loadConfig loads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates the program logger at the configured level.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "colorquest",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}
	return logger
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openBackend opens the scores database. When it cannot be opened the
// game keeps running on an in-memory history that is lost on exit.
func openBackend(logger *log.Logger) (history.Backend, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, history will not be kept", "path", flagDBPath, "error", err)
		return history.NewMemoryBackend(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("cannot close scores database", "error", err)
		}
	}
}

// navigatorOptions builds the gameplay options from the config.
func navigatorOptions(cfg config.Config, logger *log.Logger) (navigator.Options, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return navigator.Options{}, err
	}
	return navigator.Options{
		ShowDescription:  cfg.Game.ShowDescription,
		Colors:           palette,
		NameHintDuration: cfg.UI.NameHintDuration,
		BravoDelay:       cfg.Feedback.BravoDelay,
		Logger:           logger,
	}, nil
}

// historyStore creates the history store for key.
func historyStore(backend history.Backend, cfg config.Config, key string, logger *log.Logger) *history.Store {
	return history.New(backend,
		history.WithKey(key),
		history.WithLimit(cfg.History.Limit),
		history.WithLogger(logger),
	)
}
