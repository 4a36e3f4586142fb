package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chandhuDev/JobLens/internal/interfaces"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

// Where a raw document set came from.
const (
	OriginFreshCache = "fresh_cache"
	OriginSource     = "source"
	OriginStaleCache = "stale_cache"
	OriginSnapshot   = "snapshot"
)

// IngestResult is one raw document set and its provenance.
type IngestResult struct {
	Docs   []models.Document
	Origin string
	Source string
}

// IngestService loads raw documents, falling back through: a fresh cache,
// the primary source (whose result is written back to the cache), a stale
// cache, and finally a local snapshot file. Any of the collaborators may be
// nil.
type IngestService struct {
	Source   interfaces.RecordSource
	Cache    interfaces.RawCache
	Snapshot interfaces.RecordSource
	TTL      time.Duration
	Now      func() time.Time
}

func (s *IngestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *IngestService) Fetch(ctx context.Context) (IngestResult, error) {
	var (
		cached    models.CachedDocuments
		haveCache bool
		errs      []error
	)

	if s.Cache != nil {
		c, err := s.Cache.Load(ctx)
		switch {
		case err == nil:
			cached, haveCache = c, true
			if c.Fresh(s.now(), s.TTL) {
				logger.Info().Int("documents", len(c.Docs)).Time("stored_at", c.StoredAt).Msg("loaded raw documents from cache")
				return IngestResult{Docs: c.Docs, Origin: OriginFreshCache, Source: "cache"}, nil
			}
		case errors.Is(err, models.ErrCacheMiss):
		default:
			logger.Warn().Err(err).Msg("raw cache unreadable")
			errs = append(errs, fmt.Errorf("cache: %w", err))
		}
	}

	if s.Source != nil {
		docs, err := s.Source.Fetch(ctx)
		if err == nil && len(docs) > 0 {
			if s.Cache != nil {
				if cerr := s.Cache.Store(ctx, docs); cerr != nil {
					logger.Warn().Err(cerr).Msg("failed to write raw cache")
				}
			}
			return IngestResult{Docs: docs, Origin: OriginSource, Source: s.Source.Name()}, nil
		}
		if err == nil {
			err = models.ErrEmptyExport
		}
		logger.Error().Err(err).Str("source", s.Source.Name()).Msg("primary source failed")
		errs = append(errs, fmt.Errorf("%s: %w", s.Source.Name(), err))
	}

	if ctx.Err() != nil {
		return IngestResult{}, ctx.Err()
	}

	if haveCache {
		logger.Warn().Time("stored_at", cached.StoredAt).Msg("serving stale raw cache")
		return IngestResult{Docs: cached.Docs, Origin: OriginStaleCache, Source: "cache"}, nil
	}

	if s.Snapshot != nil {
		docs, err := s.Snapshot.Fetch(ctx)
		if err == nil && len(docs) > 0 {
			logger.Warn().Int("documents", len(docs)).Msg("loaded raw documents from local snapshot")
			return IngestResult{Docs: docs, Origin: OriginSnapshot, Source: s.Snapshot.Name()}, nil
		}
		if err == nil {
			err = models.ErrNoData
		}
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	}

	errs = append(errs, models.ErrNoData)
	return IngestResult{}, errors.Join(errs...)
}
