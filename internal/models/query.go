package models

// Sentinels that switch individual filters off.
const (
	AllCountries = "Global"
	AllRoles     = "All Roles"
	OtherRole    = "Other"
)

// DefaultListingLimit is the raw listing size when none is requested.
const DefaultListingLimit = 10

// Criteria selects a view of the dataset. Zero values disable each filter.
type Criteria struct {
	Countries      []string
	Role           string
	MaxExperience  *float64
	Keyword        string
	MinRecencyDays int
	Limit          int
}

type KPIs struct {
	TotalJobs     int     `json:"total_jobs"`
	AvgCTC        float64 `json:"avg_ctc"`
	AvgExperience float64 `json:"avg_experience"`
	TopSkill      string  `json:"top_skill"`
	RemoteCount   int     `json:"remote_count"`
	OnsiteCount   int     `json:"onsite_count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

type MapPoint struct {
	City  string  `json:"city"`
	Count int     `json:"count"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type SalaryPoint struct {
	City      string  `json:"city"`
	Years     int     `json:"years"`
	AvgSalary float64 `json:"avg_salary"`
	JobCount  int     `json:"job_count"`
}

// ListingRow is the projection returned by the raw listing. Missing values
// are empty strings, never null.
type ListingRow struct {
	JobRole       string  `json:"job_role"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	MinExperience float64 `json:"min_experience"`
	ParsedSalary  int64   `json:"parsed_salary"`
	LocationType  string  `json:"location_type"`
	JobType       string  `json:"job_type"`
	ApplyURL      string  `json:"apply_url"`
	JobID         string  `json:"job_id"`
}

type FilterOptions struct {
	Countries []string `json:"countries"`
	Roles     []string `json:"roles"`
}
