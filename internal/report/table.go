// Package report renders snapshots and query results for operators.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/chandhuDev/JobLens/internal/models"
)

// BuildSummary is what the build table shows.
type BuildSummary struct {
	SnapshotID     string
	Origin         string
	Source         string
	Records        int
	DistinctTitles int
	Stages         map[string]int
	Fallbacks      map[string]int
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderBuild prints the snapshot summary, classification stage counts and
// field fallbacks.
func RenderBuild(w io.Writer, s BuildSummary) {
	t := newTable(w, "Snapshot "+s.SnapshotID)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"origin", s.Origin},
		{"source", s.Source},
		{"records", s.Records},
		{"distinct titles", s.DistinctTitles},
	})
	t.AppendSeparator()
	for _, k := range sortedKeys(s.Stages) {
		t.AppendRow(table.Row{"stage " + k, s.Stages[k]})
	}
	t.AppendSeparator()
	for _, k := range sortedKeys(s.Fallbacks) {
		t.AppendRow(table.Row{"fallback " + k, s.Fallbacks[k]})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

func RenderKPIs(w io.Writer, k models.KPIs) {
	t := newTable(w, "KPIs")
	t.AppendHeader(table.Row{"Total jobs", "Avg CTC", "Avg experience", "Top skill", "Remote", "Onsite"})
	t.AppendRow(table.Row{
		k.TotalJobs,
		fmt.Sprintf("%.0f", k.AvgCTC),
		fmt.Sprintf("%.1f", k.AvgExperience),
		k.TopSkill,
		k.RemoteCount,
		k.OnsiteCount,
	})
	t.Render()
}

func RenderCompanies(w io.Writer, rows []models.CompanyCount) {
	t := newTable(w, "Top companies")
	t.AppendHeader(table.Row{"#", "Company", "Jobs"})
	for i, r := range rows {
		t.AppendRow(table.Row{i + 1, r.Company, r.Count})
	}
	t.Render()
}

func RenderSkills(w io.Writer, rows []models.SkillCount) {
	t := newTable(w, "Top skills")
	t.AppendHeader(table.Row{"#", "Skill", "Jobs"})
	for i, r := range rows {
		t.AppendRow(table.Row{i + 1, r.Skill, r.Count})
	}
	t.Render()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
