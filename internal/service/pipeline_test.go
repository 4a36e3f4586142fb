package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/classifier"
	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/service"
)

func loadConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	return cfg
}

func TestPipeline_FileSource(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(snapshot, []byte("title,location,ctc\nRockstar Ninja,\"Pune, India\",10 LPA\nQA Engineer,Remote,\n"), 0o644))
	roleMap := filepath.Join(dir, "roles.yaml")
	require.NoError(t, classifier.SaveRoleMap(roleMap, classifier.RoleMap{"Rockstar Ninja": "Sales"}))

	cfg := loadConfig(t, map[string]string{
		"SOURCE":        "file",
		"SNAPSHOT_FILE": snapshot,
		"CACHE_FILE":    filepath.Join(dir, "cache.ndjson"),
		"ROLE_MAP_FILE": roleMap,
	})

	p, err := service.NewPipeline(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer p.Close()

	snap, err := p.Dataset.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Records, 2)
	assert.Equal(t, "Sales", snap.Records[0].JobRole)
	assert.Equal(t, "QA & Testing", snap.Records[1].JobRole)
	assert.Equal(t, "file", snap.Report.Source)
	assert.Equal(t, map[string]int{"lookup": 1, "keyword": 1}, snap.Report.Stages)

	_, err = os.Stat(filepath.Join(dir, "cache.ndjson"))
	assert.NoError(t, err)
}

func TestPipeline_RedisCacheAndMissingRoleMap(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	cfg := loadConfig(t, map[string]string{
		"SOURCE":        "file",
		"SNAPSHOT_FILE": filepath.Join(dir, "jobs.ndjson"),
		"REDIS_ADDRESS": mr.Addr(),
		"ROLE_MAP_FILE": filepath.Join(dir, "missing.json"),
	})

	p, err := service.NewPipeline(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer p.Close()

	assert.IsType(t, &service.RedisCache{}, p.Ingest.Cache)
	assert.Nil(t, p.Ingest.Snapshot)
}

func TestNewClassifier_BadRoleMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	cfg := loadConfig(t, map[string]string{"SOURCE": "file", "ROLE_MAP_FILE": path})
	_, err := service.NewClassifier(cfg)
	assert.ErrorContains(t, err, "role map")
}
