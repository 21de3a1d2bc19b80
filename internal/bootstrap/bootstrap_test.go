package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yigit/campusregistry/internal/app/models"
	"github.com/yigit/campusregistry/internal/pkg/apperrors"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBootstrapSeedsDemoData(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", "logging:\n  level: debug\n  format: json\n")

	var logs bytes.Buffer
	cfg, lgr, err := LoadConfigAndSetupLogger(cfgPath, &logs)
	require.NoError(t, err)

	deps := BuildDependencies(cfg, lgr)
	ctx := context.Background()
	require.NoError(t, SeedRegistry(ctx, cfg, deps))
	require.Contains(t, logs.String(), "Seed data applied")

	snap, err := deps.Registry.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Students, 1)
	require.Equal(t, 1, deps.Repos.CourseRepository.Count())

	var out bytes.Buffer
	require.NoError(t, WriteSnapshot(&out, snap, "json"))
	var decoded models.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, snap.ID, decoded.ID)
	require.True(t, decoded.Students[0].ClubIDs.Has(101))
}

func TestSeedRegistryFromFixtureWithStrictCreate(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFile(t, dir, "fixture.yaml", `
classes:
  - {id: 1, name: A}
  - {id: 1, name: B}
`)
	cfgPath := writeFile(t, dir, "config.yaml", "logging:\n  level: disabled\nregistry:\n  strict_create: true\nseed:\n  path: "+fixture+"\n")

	cfg, lgr, err := LoadConfigAndSetupLogger(cfgPath, &bytes.Buffer{})
	require.NoError(t, err)
	deps := BuildDependencies(cfg, lgr)

	err = SeedRegistry(context.Background(), cfg, deps)
	require.ErrorIs(t, err, apperrors.ErrClassAlreadyExists)

	class, err := deps.Registry.GetClass(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "A", class.Name)
}

func TestSeedRegistryDisabled(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "config.yaml", "logging:\n  level: disabled\nseed:\n  enabled: false\n")
	cfg, lgr, err := LoadConfigAndSetupLogger(cfgPath, &bytes.Buffer{})
	require.NoError(t, err)
	deps := BuildDependencies(cfg, lgr)

	require.NoError(t, SeedRegistry(context.Background(), cfg, deps))
	require.Zero(t, deps.Repos.StudentRepository.Count())
}

func TestWriteSnapshotYAML(t *testing.T) {
	t.Parallel()

	snap := &models.Snapshot{
		ID:      "snap-1",
		Classes: []*models.Class{{ID: 201, Name: "Computer Science", StudentIDs: models.NewIDSet(3, 1)}},
	}
	var out bytes.Buffer
	require.NoError(t, WriteSnapshot(&out, snap, "yaml"))

	var decoded models.Snapshot
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Equal(t, []int64{1, 3}, decoded.Classes[0].StudentIDs.Sorted())
	require.Contains(t, out.String(), "studentIds:\n")

	require.ErrorContains(t, WriteSnapshot(&out, snap, "xml"), "unsupported output format")
}
