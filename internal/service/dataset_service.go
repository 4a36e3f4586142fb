package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/chandhuDev/JobLens/internal/classifier"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/metrics"
	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/normalizer"
)

// BuildReport describes how a snapshot was assembled.
type BuildReport struct {
	Records        int                  `json:"records"`
	DistinctTitles int                  `json:"distinct_titles"`
	Stages         map[string]int       `json:"stages"`
	Fallbacks      normalizer.Fallbacks `json:"fallbacks"`
	Origin         string               `json:"origin"`
	Source         string               `json:"source"`
	Duration       time.Duration        `json:"duration"`
}

// Snapshot is one immutable build of the dataset.
type Snapshot struct {
	ID      string             `json:"id"`
	BuiltAt time.Time          `json:"built_at"`
	Records []models.JobRecord `json:"-"`
	Report  BuildReport        `json:"report"`
}

// DatasetStore holds the published snapshot. Readers never block and never
// observe a partially built dataset.
type DatasetStore struct {
	current atomic.Pointer[Snapshot]
}

func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// Get returns the published snapshot or models.ErrDatasetUnavailable.
func (s *DatasetStore) Get() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, models.ErrDatasetUnavailable
	}
	return snap, nil
}

func (s *DatasetStore) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Builder turns one raw document set into a snapshot. Building has no side
// effects on the store.
type Builder struct {
	Ingest     *IngestService
	Classifier *classifier.Classifier
	Workers    int
	Now        func() time.Time
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	res, err := b.Ingest.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	snap, err := b.BuildFrom(ctx, res.Docs)
	if err != nil {
		return nil, err
	}
	snap.Report.Origin = res.Origin
	snap.Report.Source = res.Source
	snap.Report.Duration = time.Since(start)
	return snap, nil
}

// BuildFrom classifies and normalizes docs. The same docs always produce
// the same records.
func (b *Builder) BuildFrom(ctx context.Context, docs []models.Document) (*Snapshot, error) {
	raws := make([]models.RawRecord, len(docs))
	titles := make([]string, len(docs))
	for i, doc := range docs {
		raws[i] = models.NewRawRecord(doc)
		titles[i] = titleOf(raws[i])
	}

	classified, err := b.Classifier.ClassifyTitles(ctx, titles, b.Workers)
	if err != nil {
		return nil, fmt.Errorf("classify titles: %w", err)
	}

	report := BuildReport{
		Records:        len(raws),
		DistinctTitles: len(classified),
		Stages:         make(map[string]int),
	}
	for _, r := range classified {
		report.Stages[r.Stage.String()]++
	}

	records := make([]models.JobRecord, len(raws))
	for i, raw := range raws {
		rec, fb := normalizer.Normalize(raw, classified[titles[i]].Category)
		records[i] = rec
		report.Fallbacks.Add(fb)
	}

	return &Snapshot{
		ID:      uuid.NewString(),
		BuiltAt: b.now().UTC(),
		Records: records,
		Report:  report,
	}, nil
}

// titleOf returns the title text used for classification. Only string
// titles are classified; anything else ends up as Other.
func titleOf(raw models.RawRecord) string {
	if raw.Title.Kind != models.KindString {
		return ""
	}
	return raw.Title.Str
}

// DatasetService runs builds and publishes their snapshots. At most one
// build runs at a time.
type DatasetService struct {
	Builder *Builder
	Store   *DatasetStore
	Metrics *metrics.Metrics

	mu sync.Mutex
}

func NewDatasetService(builder *Builder, store *DatasetStore, m *metrics.Metrics) *DatasetService {
	return &DatasetService{Builder: builder, Store: store, Metrics: m}
}

// Refresh builds and publishes a new snapshot. On failure the previous
// snapshot stays published. A concurrent call returns
// models.ErrRefreshInProgress.
func (d *DatasetService) Refresh(ctx context.Context) (*Snapshot, error) {
	if !d.mu.TryLock() {
		d.observeResult("skipped")
		return nil, models.ErrRefreshInProgress
	}
	defer d.mu.Unlock()
	return d.refreshLocked(ctx)
}

// RefreshAsync starts a refresh in the background and returns at once.
// The build is detached from ctx's cancellation.
func (d *DatasetService) RefreshAsync(ctx context.Context) error {
	if !d.mu.TryLock() {
		d.observeResult("skipped")
		return models.ErrRefreshInProgress
	}
	go func() {
		defer d.mu.Unlock()
		_, _ = d.refreshLocked(context.WithoutCancel(ctx))
	}()
	return nil
}

func (d *DatasetService) refreshLocked(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	logger.Info().Msg("dataset refresh started")

	snap, err := d.Builder.Build(ctx)
	if d.Metrics != nil {
		d.Metrics.BuildDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		d.observeResult("failure")
		ev := logger.Error().Err(err)
		if prev, perr := d.Store.Get(); perr == nil {
			ev = ev.Str("serving_snapshot", prev.ID)
		}
		ev.Msg("dataset refresh failed, keeping previous snapshot")
		return nil, err
	}

	d.Store.Publish(snap)
	d.observeResult("success")
	d.observeSnapshot(snap)

	logger.Info().
		Str("snapshot", snap.ID).
		Int("records", snap.Report.Records).
		Int("distinct_titles", snap.Report.DistinctTitles).
		Str("origin", snap.Report.Origin).
		Dur("duration", time.Since(start)).
		Msg("dataset snapshot published")
	return snap, nil
}

func (d *DatasetService) observeResult(result string) {
	if d.Metrics != nil {
		d.Metrics.BuildsTotal.WithLabelValues(result).Inc()
	}
}

func (d *DatasetService) observeSnapshot(snap *Snapshot) {
	if d.Metrics == nil {
		return
	}
	m := d.Metrics
	m.SnapshotRecords.Set(float64(snap.Report.Records))
	m.SnapshotBuiltAt.Set(float64(snap.BuiltAt.Unix()))
	m.IngestOrigin.WithLabelValues(snap.Report.Origin).Inc()
	for stage, n := range snap.Report.Stages {
		m.ClassifiedTitles.WithLabelValues(stage).Add(float64(n))
	}
	fb := snap.Report.Fallbacks
	m.FieldFallbacks.WithLabelValues("location").Add(float64(fb.Location))
	m.FieldFallbacks.WithLabelValues("coordinates").Add(float64(fb.Coordinates))
	m.FieldFallbacks.WithLabelValues("salary").Add(float64(fb.Salary))
	m.FieldFallbacks.WithLabelValues("experience").Add(float64(fb.Experience))
	m.FieldFallbacks.WithLabelValues("posted_at").Add(float64(fb.PostedAt))
}
