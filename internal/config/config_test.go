package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logging.Level)
	require.True(t, cfg.PrettyLogs())
	require.False(t, cfg.Registry.StrictCreate)
	require.True(t, cfg.Seed.Enabled)
	require.Empty(t, cfg.Seed.Path)
	require.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
registry:
  strict_create: true
seed:
  enabled: false
  path: fixtures/demo.yaml
output:
  format: yaml
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.False(t, cfg.PrettyLogs())
	require.True(t, cfg.Registry.StrictCreate)
	require.False(t, cfg.Seed.Enabled)
	require.Equal(t, "fixtures/demo.yaml", cfg.Seed.Path)
	require.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "registry:\n  strict_create: false\n")
	t.Setenv("REGISTRY_STRICT_CREATE", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SEED_PATH", "/tmp/seed.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Registry.StrictCreate)
	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, "/tmp/seed.yaml", cfg.Seed.Path)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "output:\n  format: xml\n"))
	require.ErrorContains(t, err, "unsupported output format")

	_, err = LoadConfig(writeConfig(t, "logging:\n  level: loud\n"))
	require.ErrorContains(t, err, "unsupported log level")

	t.Setenv("SEED_ENABLED", "sometimes")
	_, err = LoadConfig(writeConfig(t, ""))
	require.ErrorContains(t, err, "invalid boolean format")
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "logging: [unterminated"))
	require.ErrorContains(t, err, "failed to parse config")
}
