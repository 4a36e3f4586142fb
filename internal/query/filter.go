// Package query filters a dataset snapshot and computes the dashboard
// aggregates over the resulting view. Nothing here mutates its input.
package query

import (
	"strings"
	"time"

	"github.com/chandhuDev/JobLens/internal/models"
)

const day = 24 * time.Hour

// Filter returns the records matching every active criterion, in dataset
// order. now anchors the recency window.
func Filter(records []models.JobRecord, c models.Criteria, now time.Time) []models.JobRecord {
	countries := countrySet(c.Countries)
	role := strings.TrimSpace(c.Role)
	if role == models.AllRoles {
		role = ""
	}
	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))

	var cutoff time.Time
	if c.MinRecencyDays > 0 {
		cutoff = now.Add(-time.Duration(c.MinRecencyDays) * day)
	}

	view := make([]models.JobRecord, 0, len(records))
	for _, r := range records {
		if countries != nil {
			if _, ok := countries[r.Country]; !ok {
				continue
			}
		}
		if role != "" && r.JobRole != role {
			continue
		}
		if c.MaxExperience != nil && r.MinExperience > *c.MaxExperience {
			continue
		}
		if keyword != "" && !matchesKeyword(r, keyword) {
			continue
		}
		if c.MinRecencyDays > 0 && (r.PostedAt == nil || r.PostedAt.Before(cutoff)) {
			continue
		}
		view = append(view, r)
	}
	return view
}

// countrySet returns nil when country filtering is off: no countries given
// or the Global sentinel among them.
func countrySet(countries []string) map[string]struct{} {
	if len(countries) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		c = strings.TrimSpace(c)
		if c == models.AllCountries {
			return nil
		}
		if c != "" {
			set[c] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func matchesKeyword(r models.JobRecord, keyword string) bool {
	return strings.Contains(strings.ToLower(r.RawTitle), keyword) ||
		strings.Contains(strings.ToLower(r.JobRole), keyword) ||
		strings.Contains(strings.ToLower(r.Description), keyword)
}
