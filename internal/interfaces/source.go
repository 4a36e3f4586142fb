package interfaces

import (
	"context"

	"github.com/chandhuDev/JobLens/internal/models"
)

// RecordSource produces the full raw document set for one build.
type RecordSource interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Document, error)
}

// RawCache keeps the last document set fetched from the primary source.
// Load returns models.ErrCacheMiss when nothing is stored.
type RawCache interface {
	Load(ctx context.Context) (models.CachedDocuments, error)
	Store(ctx context.Context, docs []models.Document) error
}
