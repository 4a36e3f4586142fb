package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/repository"
)

// PostgresSource reads the raw_job_postings table.
type PostgresSource struct {
	DB        *gorm.DB
	BatchSize int
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (p *PostgresSource) Name() string {
	return "postgres"
}

func (p *PostgresSource) Fetch(ctx context.Context) ([]models.Document, error) {
	docs, err := repository.ListRawJobPostings(ctx, p.DB, p.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("list raw job postings: %w", err)
	}
	if len(docs) == 0 {
		return nil, models.ErrEmptyExport
	}
	return docs, nil
}
