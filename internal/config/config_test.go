package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/config"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := config.FromLookup(lookup(map[string]string{
		"SOURCE": "file",
	}))
	require.NoError(t, err)

	assert.Equal(t, config.SourceFile, cfg.Source)
	assert.Equal(t, []string{"jobs", "job_postings"}, cfg.Typesense.Collections)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "jobs.csv", cfg.SnapshotFile)
	assert.Equal(t, "partial", cfg.Classifier.Scorer)
	assert.InDelta(t, 85.0, cfg.Classifier.Threshold, 0)
	assert.Equal(t, "@every 24h", cfg.RefreshSchedule)
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromLookup_Typesense(t *testing.T) {
	cfg, err := config.FromLookup(lookup(map[string]string{
		"TYPESENSE_HOST":        "xyz.a1.typesense.net",
		"TYPESENSE_API_KEY":     "secret",
		"TYPESENSE_PORT":        "8108",
		"TYPESENSE_PROTOCOL":    "http",
		"TYPESENSE_COLLECTIONS": "postings, jobs ,",
		"TYPESENSE_TIMEOUT":     "90s",
		"CORS_ORIGINS":          "http://localhost:3000,https://dash.example.com",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Typesense.Enabled)
	assert.Equal(t, 8108, cfg.Typesense.Port)
	assert.Equal(t, []string{"postings", "jobs"}, cfg.Typesense.Collections)
	assert.Equal(t, 90*time.Second, cfg.Typesense.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.HTTP.CORSOrigins)
}

func TestFromLookup_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"typesense without host", map[string]string{"SOURCE": "typesense"}},
		{"postgres without url", map[string]string{"SOURCE": "postgres"}},
		{"unknown source", map[string]string{"SOURCE": "mongo"}},
		{"unknown scorer", map[string]string{"SOURCE": "file", "CLASSIFIER_SCORER": "jaro"}},
		{"bad threshold", map[string]string{"SOURCE": "file", "CLASSIFIER_THRESHOLD": "150"}},
		{"unparseable port", map[string]string{"SOURCE": "file", "TYPESENSE_PORT": "eighty"}},
		{"unparseable ttl", map[string]string{"SOURCE": "file", "CACHE_TTL": "soon"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.FromLookup(lookup(tc.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JOBLENS_TEST_LEVEL=warn\nLOG_DIR=from-dotenv\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("LOG_DIR", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("JOBLENS_TEST_LEVEL") })

	require.NoError(t, config.LoadDotEnv())

	assert.Equal(t, "warn", os.Getenv("JOBLENS_TEST_LEVEL"))
	assert.Equal(t, "from-env", os.Getenv("LOG_DIR"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, config.LoadDotEnv())
}
