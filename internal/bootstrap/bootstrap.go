package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/campusregistry/internal/app/models"
	appRepos "github.com/yigit/campusregistry/internal/app/repositories"
	appServices "github.com/yigit/campusregistry/internal/app/services"
	"github.com/yigit/campusregistry/internal/config"
	"github.com/yigit/campusregistry/internal/pkg/logger"
	"github.com/yigit/campusregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Registry appServices.RegistryService
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Logs go to logOutput so stdout stays free for the snapshot.
func LoadConfigAndSetupLogger(configPath string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.PrettyLogs(),
		Output: logOutput,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the in-memory tables and the registry service
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories()
	deps.Registry = appServices.NewRegistryService(deps.Repos, appServices.RegistryOptions{
		StrictCreate: cfg.Registry.StrictCreate,
	}, lgr)
	return deps
}

// SeedRegistry loads the configured fixture, or the demo data when no path is set
func SeedRegistry(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	if !cfg.Seed.Enabled {
		deps.Logger.Info().Msg("Seeding disabled")
		return nil
	}
	if cfg.Seed.Path == "" {
		return seed.CreateDefaultData(ctx, deps.Registry, deps.Logger)
	}

	fixture, err := seed.LoadFixture(cfg.Seed.Path)
	if err != nil {
		deps.Logger.Error().Err(err).Str("path", cfg.Seed.Path).Msg("Failed to load seed fixture")
		return err
	}
	return seed.Apply(ctx, deps.Registry, fixture, deps.Logger)
}

// WriteSnapshot renders snap to w as json or yaml
func WriteSnapshot(w io.Writer, snap *models.Snapshot, format string) error {
	switch strings.ToLower(format) {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot as yaml: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot as json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
