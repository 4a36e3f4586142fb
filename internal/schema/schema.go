package schema

import "time"

// RawJobPosting is one row of the raw postings table. Columns are nullable
// text because upstream scrapers write whatever they found; normalization
// happens after loading.
type RawJobPosting struct {
	ID            uint    `gorm:"primaryKey"`
	JobID         *string `gorm:"column:job_id;index"`
	Title         *string `gorm:"column:title"`
	Location      *string `gorm:"column:location"`
	CTC           *string `gorm:"column:ctc"`
	MinExperience *string `gorm:"column:min_experience"`
	Skills        *string `gorm:"column:skills"`
	PostedAt      *int64  `gorm:"column:posted_at"`
	JobType       *string `gorm:"column:job_type"`
	LocationType  *string `gorm:"column:location_type"`
	ApplyURL      *string `gorm:"column:apply_url"`
	CompanyName   *string `gorm:"column:company_name"`
	Description   *string `gorm:"column:description"`
	LatLon        *string `gorm:"column:latlon"`
	CreatedAt     time.Time
}

func (RawJobPosting) TableName() string {
	return "raw_job_postings"
}
