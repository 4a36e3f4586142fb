package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/metrics"
	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/service"
	"github.com/chandhuDev/JobLens/server/handlers"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type fakeRefresher struct {
	err   error
	calls int
}

func (f *fakeRefresher) RefreshAsync(context.Context) error {
	f.calls++
	return f.err
}

func fixture() []models.JobRecord {
	recent := now.AddDate(0, 0, -2)
	old := now.AddDate(0, 0, -60)
	return []models.JobRecord{
		{JobID: "1", RawTitle: "React Developer", JobRole: "Frontend", City: "Bengaluru", Country: "India",
			Coords: &models.Coordinates{Lat: 12.97, Lon: 77.59}, Salary: 1500000, MinExperience: 3,
			Skills: []string{"react", "sql"}, PostedAt: &recent, CompanyName: "acme", LocationType: "Remote"},
		{JobID: "2", RawTitle: "Data Engineer", JobRole: "Data Engineering", City: "Austin", Country: "USA",
			Salary: 0, MinExperience: 8, Skills: []string{"sql"}, PostedAt: &old, CompanyName: "Globex"},
		{JobID: "3", RawTitle: "Barista", JobRole: "Other", City: "Pune", Country: "India",
			MinExperience: 1, CompanyName: "Client of Initech"},
	}
}

func newServer(t *testing.T, publish bool) (*httptest.Server, *fakeRefresher, *metrics.Metrics) {
	t.Helper()
	store := service.NewDatasetStore()
	if publish {
		store.Publish(&service.Snapshot{ID: "snap-1", BuiltAt: now, Records: fixture()})
	}
	q := service.NewQueryService(store)
	q.Now = func() time.Time { return now }

	m := metrics.New(prometheus.NewRegistry())
	r := &fakeRefresher{}
	mux := http.NewServeMux()
	handlers.NewHandlers(q, r, m).RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, r, m
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandlers_UnavailableBeforeFirstSnapshot(t *testing.T) {
	srv, _, _ := newServer(t, false)

	for _, path := range []string{"/kpis", "/companies", "/map-points", "/skills", "/salary_by_experience", "/raw-jobs", "/filter-options", "/snapshot"} {
		var body map[string]string
		status := getJSON(t, srv.URL+path, &body)
		assert.Equal(t, http.StatusServiceUnavailable, status, path)
		assert.Equal(t, "dataset unavailable", body["error"], path)
	}

	var health map[string]any
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &health))
	assert.Equal(t, false, health["ready"])
}

func TestHandlers_KPIsWithFilters(t *testing.T) {
	srv, _, _ := newServer(t, true)

	var all models.KPIs
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/kpis", &all))
	assert.Equal(t, 3, all.TotalJobs)
	assert.Equal(t, 1, all.RemoteCount)
	assert.Equal(t, "sql", all.TopSkill)

	var india models.KPIs
	getJSON(t, srv.URL+"/kpis?countries=India&countries=Canada", &india)
	assert.Equal(t, 2, india.TotalJobs)

	var global models.KPIs
	getJSON(t, srv.URL+"/kpis?countries=Global", &global)
	assert.Equal(t, 3, global.TotalJobs)

	var junior models.KPIs
	getJSON(t, srv.URL+"/kpis?exp_max=3", &junior)
	assert.Equal(t, 2, junior.TotalJobs)

	var legacy models.KPIs
	getJSON(t, srv.URL+"/kpis?exp_min=3", &legacy)
	assert.Equal(t, 2, legacy.TotalJobs)

	var recent models.KPIs
	getJSON(t, srv.URL+"/kpis?days_ago=7", &recent)
	assert.Equal(t, 1, recent.TotalJobs)

	var keyword models.KPIs
	getJSON(t, srv.URL+"/kpis?keywords=ENGINEER&role=All+Roles", &keyword)
	assert.Equal(t, 1, keyword.TotalJobs)
}

func TestHandlers_EmptyViewIsEmptyArray(t *testing.T) {
	srv, _, _ := newServer(t, true)

	resp, err := http.Get(srv.URL + "/skills?role=Sales")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw))
}

func TestHandlers_Aggregates(t *testing.T) {
	srv, _, _ := newServer(t, true)

	var companies []models.CompanyCount
	getJSON(t, srv.URL+"/companies", &companies)
	assert.Equal(t, []models.CompanyCount{{Company: "Acme", Count: 1}, {Company: "Globex", Count: 1}}, companies)

	var points []models.MapPoint
	getJSON(t, srv.URL+"/map-points", &points)
	require.Len(t, points, 1)
	assert.Equal(t, "Bengaluru", points[0].City)

	var salary []models.SalaryPoint
	getJSON(t, srv.URL+"/salary_by_experience", &salary)
	assert.Equal(t, []models.SalaryPoint{{City: "Bengaluru", Years: 3, AvgSalary: 1500000, JobCount: 1}}, salary)

	var opts models.FilterOptions
	getJSON(t, srv.URL+"/filter-options", &opts)
	assert.Equal(t, []string{"India", "USA"}, opts.Countries)
	assert.Equal(t, []string{"Data Engineering", "Frontend"}, opts.Roles)
}

func TestHandlers_RawJobsLimit(t *testing.T) {
	srv, _, _ := newServer(t, true)

	var rows []models.ListingRow
	getJSON(t, srv.URL+"/raw-jobs?limit=2", &rows)
	assert.Len(t, rows, 2)

	getJSON(t, srv.URL+"/raw-jobs?limit=abc", &rows)
	assert.Len(t, rows, 3)

	getJSON(t, srv.URL+"/raw-jobs?limit=0", &rows)
	assert.Len(t, rows, 3)
}

func TestHandlers_BadNumericParam(t *testing.T) {
	srv, _, _ := newServer(t, true)

	var body map[string]string
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/kpis?exp_max=lots", &body))
	assert.Contains(t, body["error"], "exp_max")

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv.URL+"/skills?days_ago=soon", &body))
}

func TestHandlers_Refresh(t *testing.T) {
	srv, r, _ := newServer(t, true)

	resp, err := http.Post(srv.URL+"/refresh", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, 1, r.calls)

	r.err = models.ErrRefreshInProgress
	resp, err = http.Post(srv.URL+"/refresh", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/refresh")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandlers_MetricsAndHealth(t *testing.T) {
	srv, _, m := newServer(t, true)

	var health map[string]any
	getJSON(t, srv.URL+"/health", &health)
	assert.Equal(t, true, health["ready"])
	assert.Equal(t, "snap-1", health["snapshot"])

	getJSON(t, srv.URL+"/kpis", nil)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/kpis", "200")))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
