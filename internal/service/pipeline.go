package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gorm.io/gorm"

	"github.com/chandhuDev/JobLens/internal/classifier"
	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/database"
	"github.com/chandhuDev/JobLens/internal/interfaces"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/metrics"
)

// Pipeline wires ingestion through to the published snapshot for one process.
type Pipeline struct {
	Classifier *classifier.Classifier
	Ingest     *IngestService
	Builder    *Builder
	Store      *DatasetStore
	Dataset    *DatasetService
	Query      *QueryService

	closers []func()
}

// NewPipeline connects every collaborator named in cfg. Call Close when done.
func NewPipeline(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*Pipeline, error) {
	p := &Pipeline{}

	cls, err := NewClassifier(cfg)
	if err != nil {
		return nil, err
	}
	p.Classifier = cls

	source, err := p.primarySource(cfg)
	if err != nil {
		p.Close()
		return nil, err
	}

	cache, err := p.rawCache(ctx, cfg)
	if err != nil {
		p.Close()
		return nil, err
	}

	var snapshot interfaces.RecordSource
	if cfg.Source != config.SourceFile && cfg.SnapshotFile != "" {
		snapshot = NewFileSource(cfg.SnapshotFile)
	}

	p.Ingest = &IngestService{
		Source:   source,
		Cache:    cache,
		Snapshot: snapshot,
		TTL:      cfg.Cache.TTL,
	}
	p.Builder = &Builder{
		Ingest:     p.Ingest,
		Classifier: cls,
		Workers:    cfg.Classifier.Workers,
	}
	p.Store = NewDatasetStore()
	p.Dataset = NewDatasetService(p.Builder, p.Store, m)
	p.Query = NewQueryService(p.Store)
	return p, nil
}

// NewClassifier builds the cascade with the configured scorer and the role
// map file, which is optional.
func NewClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	scorer, err := classifier.ScorerByName(cfg.Classifier.Scorer)
	if err != nil {
		return nil, err
	}

	var roleMap classifier.RoleMap
	if cfg.RoleMapFile != "" {
		roleMap, err = classifier.LoadRoleMap(cfg.RoleMapFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Info().Str("file", cfg.RoleMapFile).Msg("no role map file, lookup stage disabled")
		case err != nil:
			return nil, fmt.Errorf("role map: %w", err)
		default:
			logger.Info().Str("file", cfg.RoleMapFile).Int("entries", len(roleMap)).Msg("role map loaded")
		}
	}

	return classifier.New(classifier.DefaultTaxonomy(), classifier.Config{
		RoleMap:   roleMap,
		Scorer:    scorer,
		Threshold: cfg.Classifier.Threshold,
	}), nil
}

func (p *Pipeline) primarySource(cfg *config.Config) (interfaces.RecordSource, error) {
	switch cfg.Source {
	case config.SourceTypesense:
		return NewTypesenseSource(cfg.Typesense), nil
	case config.SourcePostgres:
		db, err := database.Connect(cfg.DatabaseURL, cfg.IsDevelopment())
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, func() { closeDB(db) })
		return NewPostgresSource(db), nil
	case config.SourceFile:
		return NewFileSource(cfg.SnapshotFile), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

func (p *Pipeline) rawCache(ctx context.Context, cfg *config.Config) (interfaces.RawCache, error) {
	if cfg.Cache.RedisAddress != "" {
		client, err := NewRedisClient(ctx, cfg.Cache)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, func() { _ = client.Close() })
		logger.Info().Str("addr", cfg.Cache.RedisAddress).Msg("using redis raw cache")
		return NewRedisCache(client), nil
	}
	if cfg.Cache.File != "" {
		return NewFileCache(cfg.Cache.File), nil
	}
	return nil, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Warn().Err(err).Msg("failed to close database")
	}
}

func (p *Pipeline) Close() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
	p.closers = nil
}
