package query

import (
	"sort"
	"strings"

	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/normalizer"
)

const (
	TopCompaniesLimit  = 10
	TopSkillsLimit     = 15
	SalaryCityLimit    = 100
	MaxSalaryExpYears  = 30
	NoTopSkill         = "N/A"
	anonymousCompanyPx = "Client Of"
	unknownRole        = "Unknown"
)

// Placeholder company names, compared after title casing.
var junkCompanies = map[string]struct{}{
	"Nan": {}, "None": {}, "Null": {}, "Unknown": {}, "Confidential": {},
	"Company Name": {}, "Private": {}, "Hidden": {}, "Client Of": {},
}

// KPIs summarizes a view. An empty view yields zero counts and N/A.
func KPIs(view []models.JobRecord) models.KPIs {
	k := models.KPIs{TotalJobs: len(view), TopSkill: NoTopSkill}
	if len(view) == 0 {
		return k
	}

	var (
		salarySum   float64
		salaryCount int
		expSum      float64
	)
	skills := newCounter()
	for _, r := range view {
		if r.Salary > 0 {
			salarySum += float64(r.Salary)
			salaryCount++
		}
		expSum += r.MinExperience
		for _, s := range r.Skills {
			skills.add(s)
		}
		if strings.Contains(strings.ToLower(r.LocationType), "remote") {
			k.RemoteCount++
		}
	}

	if salaryCount > 0 {
		k.AvgCTC = salarySum / float64(salaryCount)
	}
	k.AvgExperience = expSum / float64(len(view))
	k.OnsiteCount = k.TotalJobs - k.RemoteCount
	if top := skills.top(1); len(top) == 1 {
		k.TopSkill = top[0].key
	}
	return k
}

// TopCompanies ranks title-cased company names, skipping placeholders and
// anonymized "Client Of ..." listings.
func TopCompanies(view []models.JobRecord) []models.CompanyCount {
	c := newCounter()
	for _, r := range view {
		name := normalizer.TitleCase(r.CompanyName)
		if name == "" || strings.HasPrefix(name, anonymousCompanyPx) {
			continue
		}
		if _, junk := junkCompanies[name]; junk {
			continue
		}
		c.add(name)
	}

	out := make([]models.CompanyCount, 0, TopCompaniesLimit)
	for _, e := range c.top(TopCompaniesLimit) {
		out = append(out, models.CompanyCount{Company: e.key, Count: e.count})
	}
	return out
}

// MapPoints groups records that have coordinates by city, sorted by city.
func MapPoints(view []models.JobRecord) []models.MapPoint {
	type acc struct {
		count    int
		lat, lon float64
	}
	groups := make(map[string]*acc)
	for _, r := range view {
		if r.Coords == nil {
			continue
		}
		g, ok := groups[r.City]
		if !ok {
			g = &acc{}
			groups[r.City] = g
		}
		g.count++
		g.lat += r.Coords.Lat
		g.lon += r.Coords.Lon
	}

	out := make([]models.MapPoint, 0, len(groups))
	for city, g := range groups {
		out = append(out, models.MapPoint{
			City:  city,
			Count: g.count,
			Lat:   g.lat / float64(g.count),
			Lon:   g.lon / float64(g.count),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}

// TopSkills ranks skills across every record in the view.
func TopSkills(view []models.JobRecord) []models.SkillCount {
	c := newCounter()
	for _, r := range view {
		for _, s := range r.Skills {
			if s != "" {
				c.add(s)
			}
		}
	}

	out := make([]models.SkillCount, 0, TopSkillsLimit)
	for _, e := range c.top(TopSkillsLimit) {
		out = append(out, models.SkillCount{Skill: e.key, Count: e.count})
	}
	return out
}

// SalaryByExperience averages salary per (city, whole years) over records
// with a known salary and under 30 years of experience, limited to the
// most frequent cities. Rows are sorted by city, then years.
func SalaryByExperience(view []models.JobRecord) []models.SalaryPoint {
	eligible := make([]models.JobRecord, 0, len(view))
	cities := newCounter()
	for _, r := range view {
		if r.Salary <= 0 || r.MinExperience >= MaxSalaryExpYears {
			continue
		}
		eligible = append(eligible, r)
		cities.add(r.City)
	}

	kept := make(map[string]struct{}, SalaryCityLimit)
	for _, e := range cities.top(SalaryCityLimit) {
		kept[e.key] = struct{}{}
	}

	type key struct {
		city  string
		years int
	}
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[key]*acc)
	for _, r := range eligible {
		if _, ok := kept[r.City]; !ok {
			continue
		}
		k := key{city: r.City, years: int(r.MinExperience)}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
		}
		g.sum += float64(r.Salary)
		g.count++
	}

	out := make([]models.SalaryPoint, 0, len(groups))
	for k, g := range groups {
		out = append(out, models.SalaryPoint{
			City:      k.city,
			Years:     k.years,
			AvgSalary: g.sum / float64(g.count),
			JobCount:  g.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].Years < out[j].Years
	})
	return out
}

// Listing projects the first limit records. limit <= 0 uses the default.
func Listing(view []models.JobRecord, limit int) []models.ListingRow {
	if limit <= 0 {
		limit = models.DefaultListingLimit
	}
	if len(view) < limit {
		limit = len(view)
	}

	out := make([]models.ListingRow, 0, limit)
	for _, r := range view[:limit] {
		out = append(out, models.ListingRow{
			JobRole:       r.JobRole,
			City:          r.City,
			Country:       r.Country,
			MinExperience: r.MinExperience,
			ParsedSalary:  r.Salary,
			LocationType:  r.LocationType,
			JobType:       r.JobType,
			ApplyURL:      r.ApplyURL,
			JobID:         r.JobID,
		})
	}
	return out
}

// Options lists the countries and role categories present in records.
// Placeholder roles and single-character countries are left out.
func Options(records []models.JobRecord) models.FilterOptions {
	countries := make(map[string]struct{})
	roles := make(map[string]struct{})
	for _, r := range records {
		if len(r.Country) > 1 {
			countries[r.Country] = struct{}{}
		}
		switch r.JobRole {
		case "", models.OtherRole, unknownRole:
		default:
			roles[r.JobRole] = struct{}{}
		}
	}
	return models.FilterOptions{
		Countries: sortedKeys(countries),
		Roles:     sortedKeys(roles),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
