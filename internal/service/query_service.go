package service

import (
	"time"

	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/query"
)

// QueryService answers dashboard queries against the published snapshot.
// Every method returns models.ErrDatasetUnavailable before the first build.
type QueryService struct {
	Store *DatasetStore
	Now   func() time.Time
}

func NewQueryService(store *DatasetStore) *QueryService {
	return &QueryService{Store: store, Now: time.Now}
}

func (q *QueryService) view(c models.Criteria) ([]models.JobRecord, error) {
	snap, err := q.Store.Get()
	if err != nil {
		return nil, err
	}
	now := time.Now
	if q.Now != nil {
		now = q.Now
	}
	return query.Filter(snap.Records, c, now()), nil
}

func (q *QueryService) KPIs(c models.Criteria) (models.KPIs, error) {
	v, err := q.view(c)
	if err != nil {
		return models.KPIs{}, err
	}
	return query.KPIs(v), nil
}

func (q *QueryService) TopCompanies(c models.Criteria) ([]models.CompanyCount, error) {
	v, err := q.view(c)
	if err != nil {
		return nil, err
	}
	return query.TopCompanies(v), nil
}

func (q *QueryService) MapPoints(c models.Criteria) ([]models.MapPoint, error) {
	v, err := q.view(c)
	if err != nil {
		return nil, err
	}
	return query.MapPoints(v), nil
}

func (q *QueryService) TopSkills(c models.Criteria) ([]models.SkillCount, error) {
	v, err := q.view(c)
	if err != nil {
		return nil, err
	}
	return query.TopSkills(v), nil
}

func (q *QueryService) SalaryByExperience(c models.Criteria) ([]models.SalaryPoint, error) {
	v, err := q.view(c)
	if err != nil {
		return nil, err
	}
	return query.SalaryByExperience(v), nil
}

func (q *QueryService) RawListing(c models.Criteria) ([]models.ListingRow, error) {
	v, err := q.view(c)
	if err != nil {
		return nil, err
	}
	return query.Listing(v, c.Limit), nil
}

// FilterOptions covers the whole snapshot, not a filtered view.
func (q *QueryService) FilterOptions() (models.FilterOptions, error) {
	snap, err := q.Store.Get()
	if err != nil {
		return models.FilterOptions{}, err
	}
	return query.Options(snap.Records), nil
}

func (q *QueryService) Snapshot() (*Snapshot, error) {
	return q.Store.Get()
}
