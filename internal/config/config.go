// Package config reads JobLens settings from the environment (and an
// optional .env file) and validates them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	SourceTypesense = "typesense"
	SourcePostgres  = "postgres"
	SourceFile      = "file"
)

type TypesenseConfig struct {
	Host        string        `validate:"required_if=Enabled true"`
	Port        int           `validate:"gt=0,lte=65535"`
	Protocol    string        `validate:"oneof=http https"`
	APIKey      string        `validate:"required_if=Enabled true"`
	Collections []string      `validate:"min=1,dive,required"`
	Timeout     time.Duration `validate:"gt=0"`
	Enabled     bool
}

type CacheConfig struct {
	File          string
	TTL           time.Duration `validate:"gt=0"`
	RedisAddress  string
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
}

type ClassifierConfig struct {
	Scorer    string  `validate:"oneof=partial token_set"`
	Threshold float64 `validate:"gt=0,lt=100"`
	Workers   int     `validate:"gte=0"`
}

type HTTPConfig struct {
	Addr           string `validate:"required"`
	CORSOrigins    []string
	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=0"`
}

type Config struct {
	Env             string
	Source          string `validate:"oneof=typesense postgres file"`
	Typesense       TypesenseConfig
	DatabaseURL     string `validate:"required_if=Source postgres"`
	Cache           CacheConfig
	SnapshotFile    string `validate:"required_if=Source file"`
	RoleMapFile     string
	Classifier      ClassifierConfig
	RefreshSchedule string
	HTTP            HTTPConfig
	AnthropicAPIKey string
}

// LoadDotEnv reads .env (if present) into the process environment. Variables
// already set win. Call it before anything reads the environment, the
// logger included.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads .env (if present) into the process environment and builds the
// Config from it.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds and validates a Config from lookup, which has the
// signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	r := reader{lookup: lookup}

	cfg := &Config{
		Env:    r.str("ENV", "development"),
		Source: strings.ToLower(r.str("SOURCE", SourceTypesense)),
		Typesense: TypesenseConfig{
			Host:        r.str("TYPESENSE_HOST", ""),
			Port:        r.int("TYPESENSE_PORT", 443),
			Protocol:    r.str("TYPESENSE_PROTOCOL", "https"),
			APIKey:      r.str("TYPESENSE_API_KEY", ""),
			Collections: r.list("TYPESENSE_COLLECTIONS", []string{"jobs", "job_postings"}),
			Timeout:     r.duration("TYPESENSE_TIMEOUT", 5*time.Minute),
		},
		DatabaseURL: r.str("DATABASE_URL", ""),
		Cache: CacheConfig{
			File:          r.str("CACHE_FILE", "live_cache.ndjson"),
			TTL:           r.duration("CACHE_TTL", 24*time.Hour),
			RedisAddress:  r.str("REDIS_ADDRESS", ""),
			RedisPassword: r.str("REDIS_PASSWORD", ""),
			RedisDB:       r.int("REDIS_DB", 0),
		},
		SnapshotFile: r.str("SNAPSHOT_FILE", "jobs.csv"),
		RoleMapFile:  r.str("ROLE_MAP_FILE", "role_map.json"),
		Classifier: ClassifierConfig{
			Scorer:    r.str("CLASSIFIER_SCORER", "partial"),
			Threshold: r.float("CLASSIFIER_THRESHOLD", 85),
			Workers:   r.int("CLASSIFIER_WORKERS", 0),
		},
		RefreshSchedule: r.str("REFRESH_SCHEDULE", "@every 24h"),
		HTTP: HTTPConfig{
			Addr:           r.str("HTTP_ADDR", ":8000"),
			CORSOrigins:    r.list("CORS_ORIGINS", []string{"*"}),
			RateLimitRPS:   r.float("RATE_LIMIT_RPS", 20),
			RateLimitBurst: r.int("RATE_LIMIT_BURST", 40),
		},
		AnthropicAPIKey: r.str("ANTHROPIC_API_KEY", ""),
	}
	cfg.Typesense.Enabled = cfg.Source == SourceTypesense

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// reader collects parse errors so every bad variable is reported at once.
type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) raw(key string) (string, bool) {
	v, ok := r.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *reader) str(key, def string) string {
	if v, ok := r.raw(key); ok {
		return v
	}
	return def
}

func (r *reader) int(key string, def int) int {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (r *reader) list(key string, def []string) []string {
	v, ok := r.raw(key)
	if !ok {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
