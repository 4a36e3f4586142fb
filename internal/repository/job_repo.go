package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/schema"
)

const defaultBatchSize = 1000

// ListRawJobPostings reads every raw posting in primary key order,
// batchSize rows at a time, and returns them as documents keyed by column
// name.
func ListRawJobPostings(ctx context.Context, DB *gorm.DB, batchSize int) ([]models.Document, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var docs []models.Document
	var batch []schema.RawJobPosting
	result := DB.WithContext(ctx).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			for _, row := range batch {
				docs = append(docs, toDocument(row))
			}
			return nil
		})
	if result.Error != nil {
		return nil, result.Error
	}
	return docs, nil
}

func toDocument(row schema.RawJobPosting) models.Document {
	doc := models.Document{}
	put := func(key string, v *string) {
		if v != nil {
			doc[key] = *v
		}
	}
	put("job_id", row.JobID)
	put("title", row.Title)
	put("location", row.Location)
	put("ctc", row.CTC)
	put("min_experience", row.MinExperience)
	put("skills", row.Skills)
	put("job_type", row.JobType)
	put("location_type", row.LocationType)
	put("apply_url", row.ApplyURL)
	put("company_name", row.CompanyName)
	put("description", row.Description)
	put("latlon", row.LatLon)
	if row.PostedAt != nil {
		doc["posted_at"] = *row.PostedAt
	}
	return doc
}
