package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/yigit/campusregistry/internal/bootstrap"
	"github.com/yigit/campusregistry/internal/pkg/logger" // Still needed for initial error logging
)

func main() {
	configPath := filepath.Join("configs", "config.yaml")
	if p, ok := os.LookupEnv("REGISTRY_CONFIG"); ok {
		configPath = p
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, os.Stderr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize registry")
		os.Exit(1)
	}

	ctx := context.Background()
	deps := bootstrap.BuildDependencies(cfg, lgr)

	// Seed failures are per-row; report them and still print what was built.
	if err := bootstrap.SeedRegistry(ctx, cfg, deps); err != nil {
		lgr.Error().Err(err).Msg("Seeding finished with errors")
	}

	if err := deps.Registry.VerifyConsistency(ctx); err != nil {
		lgr.Error().Err(err).Msg("Registry is inconsistent")
		os.Exit(1)
	}

	snap, err := deps.Registry.Snapshot(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to take snapshot")
		os.Exit(1)
	}
	if err := bootstrap.WriteSnapshot(os.Stdout, snap, cfg.Output.Format); err != nil {
		lgr.Error().Err(err).Msg("Failed to write snapshot")
		os.Exit(1)
	}

	lgr.Info().Str("snapshotID", snap.ID).Msg("Registry demo finished")
}
