package normalizer

import (
	"strings"

	"github.com/chandhuDev/JobLens/internal/models"
)

// Fallbacks counts, per field, how many records used a default value.
type Fallbacks struct {
	Location    int `json:"location"`
	Coordinates int `json:"coordinates"`
	Salary      int `json:"salary"`
	Experience  int `json:"experience"`
	PostedAt    int `json:"posted_at"`
}

// Add folds other into f.
func (f *Fallbacks) Add(other Fallbacks) {
	f.Location += other.Location
	f.Coordinates += other.Coordinates
	f.Salary += other.Salary
	f.Experience += other.Experience
	f.PostedAt += other.PostedAt
}

// Normalize builds the JobRecord for raw. role is the already classified
// category of raw.Title.
func Normalize(raw models.RawRecord, role string) (models.JobRecord, Fallbacks) {
	var fb Fallbacks

	city, country, ok := ParseLocation(raw.Location)
	if !ok {
		fb.Location++
	}

	coords := ResolveLatLon(raw.LatLon, city)
	if coords == nil {
		fb.Coordinates++
	}

	salary, ok := ParseSalary(raw.Salary)
	if !ok {
		fb.Salary++
	}

	exp, ok := ParseExperience(raw.MinExperience)
	if !ok {
		fb.Experience++
	}

	posted := ParsePostedAt(raw.PostedAt)
	if posted == nil {
		fb.PostedAt++
	}

	return models.JobRecord{
		JobID:         text(raw.JobID),
		RawTitle:      text(raw.Title),
		JobRole:       role,
		City:          city,
		Country:       country,
		Coords:        coords,
		Salary:        salary,
		MinExperience: exp,
		Skills:        CleanSkills(raw.Skills),
		PostedAt:      posted,
		CompanyName:   text(raw.CompanyName),
		Description:   text(raw.Description),
		ApplyURL:      text(raw.ApplyURL),
		JobType:       text(raw.JobType),
		LocationType:  text(raw.LocationType),
	}, fb
}

func text(v models.Value) string {
	return strings.TrimSpace(v.Text())
}
