package models

import (
	"strings"
	"time"
)

// Document is one decoded record from the document store, a CSV row or a
// database row, keyed by the store's own column names.
type Document map[string]any

// RawRecord is a Document after column-name resolution. Nothing is
// normalized yet.
type RawRecord struct {
	JobID         Value
	Title         Value
	Location      Value
	Salary        Value
	MinExperience Value
	Skills        Value
	PostedAt      Value
	JobType       Value
	LocationType  Value
	ApplyURL      Value
	CompanyName   Value
	Description   Value
	LatLon        Value
}

// Column aliases, first present wins. Keys are compared after trimming and
// lower-casing.
var (
	jobIDAliases        = []string{"job_id", "id"}
	titleAliases        = []string{"title", "job title", "job_title", "raw_role"}
	locationAliases     = []string{"location", "raw_location"}
	salaryAliases       = []string{"ctc", "salary"}
	experienceAliases   = []string{"min_experience", "experience"}
	skillsAliases       = []string{"skills", "key_skills"}
	postedAtAliases     = []string{"posted_at"}
	jobTypeAliases      = []string{"job_type"}
	locationTypeAliases = []string{"location_type"}
	applyURLAliases     = []string{"apply_link", "apply_url", "url"}
	companyNameAliases  = []string{"company_name", "company"}
	descriptionAliases  = []string{"description"}
	latLonAliases       = []string{"latlon"}
)

// NewRawRecord resolves doc's column names into canonical fields.
func NewRawRecord(doc Document) RawRecord {
	lowered := make(map[string]any, len(doc))
	for k, v := range doc {
		key := strings.ToLower(strings.TrimSpace(k))
		if prev, dup := lowered[key]; dup && !ValueOf(prev).IsAbsent() {
			continue
		}
		lowered[key] = v
	}

	get := func(keys []string) Value {
		for _, key := range keys {
			if v, ok := lowered[key]; ok {
				if val := ValueOf(v); !val.IsAbsent() {
					return val
				}
			}
		}
		return Absent
	}

	return RawRecord{
		JobID:         get(jobIDAliases),
		Title:         get(titleAliases),
		Location:      get(locationAliases),
		Salary:        get(salaryAliases),
		MinExperience: get(experienceAliases),
		Skills:        get(skillsAliases),
		PostedAt:      get(postedAtAliases),
		JobType:       get(jobTypeAliases),
		LocationType:  get(locationTypeAliases),
		ApplyURL:      get(applyURLAliases),
		CompanyName:   get(companyNameAliases),
		Description:   get(descriptionAliases),
		LatLon:        get(latLonAliases),
	}
}

// Coordinates is a resolved map position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// JobRecord is one normalized posting. Records are shared by every reader
// of a snapshot and must not be modified after the build.
type JobRecord struct {
	JobID         string       `json:"job_id"`
	RawTitle      string       `json:"raw_role"`
	JobRole       string       `json:"job_role"`
	City          string       `json:"city"`
	Country       string       `json:"country"`
	Coords        *Coordinates `json:"coords,omitempty"`
	Salary        int64        `json:"parsed_salary"`
	MinExperience float64      `json:"min_experience"`
	Skills        []string     `json:"skills"`
	PostedAt      *time.Time   `json:"posted_at,omitempty"`
	CompanyName   string       `json:"company_name"`
	Description   string       `json:"description"`
	ApplyURL      string       `json:"apply_url"`
	JobType       string       `json:"job_type"`
	LocationType  string       `json:"location_type"`
}
