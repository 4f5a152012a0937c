package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/reasoner/internal/config"
	"github.com/DjordjeVuckovic/reasoner/internal/logging"
	"github.com/DjordjeVuckovic/reasoner/internal/reasoner"
	"github.com/DjordjeVuckovic/reasoner/pkg/config/env"
	"github.com/spf13/cobra"
)

type cliConfig struct {
	ConfigPath string
	Verbose    int
	Themed     bool
	Seed       uint64
}

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	reasoner *reasoner.Reasoner
}

// load resolves configuration and builds the reasoner. Flags that were set
// explicitly override file and environment values.
func (c *cliConfig) load(cmd *cobra.Command) (*app, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), ".env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Log.Level = logging.LevelFromVerbosity(c.Verbose)
	}
	if flags.Changed("themed") {
		cfg.Responder.Themed = c.Themed
	}
	if flags.Changed("seed") {
		cfg.Responder.Seed = c.Seed
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	slog.SetDefault(logger)

	r, err := reasoner.FromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, reasoner: r}, nil
}
