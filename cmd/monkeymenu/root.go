package main

import (
	"fmt"
	mrand "math/rand"
	"os"

	"github.com/faideww/monkey-menu/internal/console"
	"github.com/faideww/monkey-menu/internal/monkey"
	"github.com/faideww/monkey-menu/internal/store"
	"github.com/faideww/monkey-menu/internal/ui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monkeymenu",
		Short: "Browse a catalog of monkey species from the terminal",
		Long: `monkeymenu is an interactive menu for a small catalog of monkey species.

List every species, look one up by name, draw a random monkey and see
statistics for the catalog and the current session.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd, cfg, logger)
		},
	}
}

func run(cmd *cobra.Command, cfg *Config, logger *zap.Logger) error {
	ctx := cmd.Context()

	var catRng, artRng *mrand.Rand
	if cfg.Seed != 0 {
		catRng = mrand.New(mrand.NewSource(cfg.Seed))
		artRng = mrand.New(mrand.NewSource(cfg.Seed + 1))
	}

	cat := monkey.NewCatalog(speciesSource(cfg), catRng)
	if err := cat.Initialize(ctx); err != nil {
		logger.Warn("starting with an empty catalog",
			zap.String("source", cfg.SpeciesSource),
			zap.Error(err))
	} else {
		logger.Info("catalog loaded",
			zap.String("source", cfg.SpeciesSource),
			zap.Int("species", cat.Count()))
	}

	// The menu runs without a journal if it cannot be opened.
	var journal console.Journal
	st, err := store.OpenSQLite(ctx)
	if err != nil {
		logger.Warn("pick journal unavailable", zap.Error(err))
	} else {
		defer st.Close()
		journal = st
		logger.Debug("pick journal opened", zap.String("session", st.SessionId()))
	}

	session := console.NewSession(console.Options{
		Catalog:   cat,
		Journal:   journal,
		Renderer:  ui.New(cmd.OutOrStdout()),
		Input:     cmd.InOrStdin(),
		Pauser:    console.NewKeyPauser(os.Stdin, cfg.PauseDelay, nil),
		Logger:    logger,
		Rand:      artRng,
		RollDelay: cfg.RollDelay,
	})
	return session.Run(ctx)
}

func speciesSource(cfg *Config) monkey.Source {
	switch cfg.SpeciesSource {
	case "file":
		return monkey.FileSource{Path: cfg.SpeciesFile}
	case "remote":
		return monkey.RemoteSource{URL: cfg.SpeciesURL}
	default:
		return monkey.BuiltinSource{}
	}
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if cfg.LogFile != "" {
		config.OutputPaths = []string{cfg.LogFile}
		config.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return config.Build()
}
