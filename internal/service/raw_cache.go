package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/models"
)

// FileCache keeps the raw documents as NDJSON on disk. The file's
// modification time is the time the set was stored.
type FileCache struct {
	Path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{Path: path}
}

func (c *FileCache) Load(ctx context.Context) (models.CachedDocuments, error) {
	if err := ctx.Err(); err != nil {
		return models.CachedDocuments{}, err
	}

	info, err := os.Stat(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.CachedDocuments{}, models.ErrCacheMiss
	}
	if err != nil {
		return models.CachedDocuments{}, fmt.Errorf("stat cache: %w", err)
	}

	file, err := os.Open(c.Path)
	if err != nil {
		return models.CachedDocuments{}, fmt.Errorf("open cache: %w", err)
	}
	defer file.Close()

	docs, err := decodeNDJSON(file)
	if err != nil {
		return models.CachedDocuments{}, fmt.Errorf("decode cache: %w", err)
	}
	if len(docs) == 0 {
		return models.CachedDocuments{}, models.ErrCacheMiss
	}
	return models.CachedDocuments{Docs: docs, StoredAt: info.ModTime()}, nil
}

// Store replaces the cache file through a rename so a crash never leaves a
// truncated cache behind.
func (c *FileCache) Store(ctx context.Context, docs []models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(c.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Path), ".raw-cache-*")
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encodeNDJSON(tmp, docs); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}

const (
	defaultRedisKey       = "joblens:raw-documents"
	defaultRedisRetention = 7 * 24 * time.Hour
)

type redisPayload struct {
	StoredAt time.Time         `json:"stored_at"`
	Docs     []models.Document `json:"docs"`
}

// RedisCache stores the raw documents under a single key. The key expires
// after Retention, which should be well beyond the freshness TTL so a stale
// copy is still around when the primary source is down.
type RedisCache struct {
	Client    *redis.Client
	Key       string
	Retention time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client, Key: defaultRedisKey, Retention: defaultRedisRetention}
}

func (c *RedisCache) Load(ctx context.Context) (models.CachedDocuments, error) {
	data, err := c.Client.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.CachedDocuments{}, models.ErrCacheMiss
	}
	if err != nil {
		return models.CachedDocuments{}, fmt.Errorf("redis get %s: %w", c.Key, err)
	}

	var p redisPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.CachedDocuments{}, fmt.Errorf("decode redis cache: %w", err)
	}
	if len(p.Docs) == 0 {
		return models.CachedDocuments{}, models.ErrCacheMiss
	}
	return models.CachedDocuments{Docs: p.Docs, StoredAt: p.StoredAt}, nil
}

func (c *RedisCache) Store(ctx context.Context, docs []models.Document) error {
	data, err := json.Marshal(redisPayload{StoredAt: time.Now().UTC(), Docs: docs})
	if err != nil {
		return fmt.Errorf("encode redis cache: %w", err)
	}
	if err := c.Client.Set(ctx, c.Key, data, c.Retention).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", c.Key, err)
	}
	return nil
}

// NewRedisClient connects and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	if cfg.RedisAddress == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
