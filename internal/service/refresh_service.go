package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

// RefreshService rebuilds the dataset on a cron schedule.
type RefreshService struct {
	Dataset  *DatasetService
	Schedule string

	cron *cron.Cron
}

func NewRefreshService(dataset *DatasetService, schedule string) *RefreshService {
	return &RefreshService{Dataset: dataset, Schedule: schedule}
}

// Start registers the schedule and starts the scheduler. An empty schedule
// disables periodic refreshes.
func (r *RefreshService) Start(ctx context.Context) error {
	if r.Schedule == "" {
		logger.Info().Msg("periodic refresh disabled")
		return nil
	}

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.Schedule, func() { r.run(ctx) }); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", r.Schedule, err)
	}
	r.cron.Start()
	logger.Info().Str("schedule", r.Schedule).Msg("periodic refresh scheduled")
	return nil
}

func (r *RefreshService) run(ctx context.Context) {
	if _, err := r.Dataset.Refresh(ctx); errors.Is(err, models.ErrRefreshInProgress) {
		logger.Warn().Msg("scheduled refresh skipped, previous build still running")
	}
}

// Stop halts the scheduler and waits for a running job to finish or ctx to
// expire.
func (r *RefreshService) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		logger.Warn().Msg("refresh still running at shutdown")
	}
}
